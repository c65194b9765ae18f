package http

import (
	"errors"
	"net/http"

	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/GooferByte/rewardcatalog/internal/reward"
	"github.com/GooferByte/rewardcatalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Router wires all handlers.
func Router(catalog *service.CatalogService, earningsSvc *service.EarningsService, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(logMiddleware(logger))

	r.GET("/rewards", func(c *gin.Context) {
		handleListRewards(c, catalog)
	})
	r.GET("/categories/:category/rewards", func(c *gin.Context) {
		handleListRewards(c, catalog)
	})
	r.GET("/rewards/:id", func(c *gin.Context) {
		handleGetReward(c, catalog)
	})
	r.PUT("/rewards/:id", func(c *gin.Context) {
		handlePutReward(c, catalog)
	})
	r.GET("/earnings/:userId/summary", func(c *gin.Context) {
		handleEarningSummary(c, earningsSvc)
	})
	r.PUT("/earnings/:userId", func(c *gin.Context) {
		handlePutBalance(c, earningsSvc)
	})
	return r
}

func handleListRewards(c *gin.Context, svc *service.CatalogService) {
	query := reward.ParseRewardQuery(reward.Route{
		RawQuery: c.Request.URL.RawQuery,
		Category: c.Param("category"),
	})
	rewards, err := svc.ListRewards(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	sort := query.Sort
	if !sort.Valid() {
		sort = reward.SortDefault
	}
	categories := query.Category
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query":      reward.StringifyRewardQuery(query),
		"categories": categories,
		"sort":       sort,
		"rewards":    rewards,
	})
}

func handleGetReward(c *gin.Context, svc *service.CatalogService) {
	r, err := svc.GetReward(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func handlePutReward(c *gin.Context, svc *service.CatalogService) {
	var res models.RewardResource
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if res.ID == "" {
		res.ID = id
	}
	if res.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id in body does not match path"})
		return
	}
	if err := svc.SaveResource(c.Request.Context(), res); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func handleEarningSummary(c *gin.Context, svc *service.EarningsService) {
	summary, err := svc.Summary(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func handlePutBalance(c *gin.Context, svc *service.EarningsService) {
	var bal models.EarningBalance
	if err := c.ShouldBindJSON(&bal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bal.UserID = c.Param("userId")
	if err := svc.SaveBalance(c.Request.Context(), bal); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrValidation) {
		status = http.StatusBadRequest
	}
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
