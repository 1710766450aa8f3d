package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"boatyard/internal/app/ds"
	"boatyard/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BoatRepository interface {
	GetBoats(ctx context.Context) ([]ds.Boat, error)
	GetBoat(ctx context.Context, id uint) (ds.Boat, error)
	FirstFive(ctx context.Context) ([]ds.Boat, error)
	Dinghies(ctx context.Context) ([]ds.Boat, error)
	Ships(ctx context.Context) ([]ds.Boat, error)
	LastThreeAlphabetically(ctx context.Context) ([]ds.Boat, error)
	WithoutACaptain(ctx context.Context) ([]ds.Boat, error)
	Sailboats(ctx context.Context) ([]ds.Boat, error)
	WithThreeClassifications(ctx context.Context) ([]ds.Boat, error)
	NonSailboats(ctx context.Context) ([]ds.Boat, error)
	Longest(ctx context.Context) (*ds.Boat, error)
}

type BoatHandler struct {
	Repository BoatRepository
}

type boatList func(ctx context.Context) ([]ds.Boat, error)

// list - общий ответ для выборок: {"data": [...], "count": n}
func (h *BoatHandler) list(c *gin.Context, fetch boatList) {
	boats, err := fetch(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  boats,
		"count": len(boats),
	})
}

func (h *BoatHandler) storageError(c *gin.Context, err error) {
	logrus.WithField("path", c.Request.URL.Path).Errorf("boat query failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

// @Summary List boats
// @Description All boats with their captain
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats [get]
func (h *BoatHandler) GetBoatsAPI(c *gin.Context) {
	h.list(c, h.Repository.GetBoats)
}

// @Summary Get boat
// @Description One boat with captain and classifications
// @Tags boats
// @Produce json
// @Param id path int true "Boat ID"
// @Success 200 {object} object "data: ds.Boat"
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/{id} [get]
func (h *BoatHandler) GetBoatAPI(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid boat ID",
		})
		return
	}

	boat, err := h.Repository.GetBoat(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Boat not found",
			})
			return
		}
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": boat,
	})
}

// @Summary First five boats
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/first_five [get]
func (h *BoatHandler) FirstFiveAPI(c *gin.Context) {
	h.list(c, h.Repository.FirstFive)
}

// @Summary Dinghies
// @Description Boats shorter than 20
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/dinghy [get]
func (h *BoatHandler) DinghyAPI(c *gin.Context) {
	h.list(c, h.Repository.Dinghies)
}

// @Summary Ships
// @Description Boats of length 20 or more
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/ship [get]
func (h *BoatHandler) ShipAPI(c *gin.Context) {
	h.list(c, h.Repository.Ships)
}

// @Summary Last three alphabetically
// @Description Three boats ordered by name Z-A
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/last_three_alphabetically [get]
func (h *BoatHandler) LastThreeAlphabeticallyAPI(c *gin.Context) {
	h.list(c, h.Repository.LastThreeAlphabetically)
}

// @Summary Boats without a captain
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/without_a_captain [get]
func (h *BoatHandler) WithoutACaptainAPI(c *gin.Context) {
	h.list(c, h.Repository.WithoutACaptain)
}

// @Summary Sailboats
// @Description Boats classified as Sailboat, with their classifications
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/sailboats [get]
func (h *BoatHandler) SailboatsAPI(c *gin.Context) {
	h.list(c, h.Repository.Sailboats)
}

// @Summary Boats with three classifications
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/with_three_classifications [get]
func (h *BoatHandler) WithThreeClassificationsAPI(c *gin.Context) {
	h.list(c, h.Repository.WithThreeClassifications)
}

// @Summary Non-sailboats
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: []ds.Boat, count: int"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/non_sailboats [get]
func (h *BoatHandler) NonSailboatsAPI(c *gin.Context) {
	h.list(c, h.Repository.NonSailboats)
}

// @Summary Longest boat
// @Description The longest boat, data is null when there are no boats
// @Tags boats
// @Produce json
// @Success 200 {object} object "data: ds.Boat or null"
// @Failure 500 {object} object "error: string"
// @Router /api/boats/longest [get]
func (h *BoatHandler) LongestAPI(c *gin.Context) {
	boat, err := h.Repository.Longest(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": boat,
	})
}
