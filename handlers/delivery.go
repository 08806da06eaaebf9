package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkpicture/perfect-bites/models"
)

type UpdateDeliveryRequest struct {
	Mode          models.FulfillmentMode `json:"mode" binding:"required"`
	ClientName    string                 `json:"client_name"`
	RequestedTime string                 `json:"requested_time"`
}

// LocationResultRequest carries the browser's answer to a location
// request: either a coordinate pair or a failure reason, tagged with
// the request id handed out by RequestLocationHandler.
type LocationResultRequest struct {
	RequestID uint64            `json:"request_id" binding:"required"`
	Latitude  *float64          `json:"latitude"`
	Longitude *float64          `json:"longitude"`
	Failure   models.GeoFailure `json:"failure"`
}

type DeliveryResponse struct {
	Mode          models.FulfillmentMode `json:"mode"`
	ClientName    string                 `json:"client_name"`
	RequestedTime string                 `json:"requested_time"`
	Location      LocationResponse       `json:"location"`
}

type LocationResponse struct {
	State       models.ProbeState   `json:"state"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	LastFailure models.GeoFailure   `json:"last_failure,omitempty"`
}

func buildDeliveryResponse(sess *models.Session) DeliveryResponse {
	draft := sess.Draft()
	return DeliveryResponse{
		Mode:          draft.Mode,
		ClientName:    draft.ClientName,
		RequestedTime: draft.RequestedTime,
		Location:      buildLocationResponse(sess),
	}
}

func buildLocationResponse(sess *models.Session) LocationResponse {
	return LocationResponse{
		State:       sess.Probe.State(),
		Coordinates: sess.Probe.Coordinates(),
		LastFailure: sess.Probe.LastFailure(),
	}
}

// GetDeliveryHandler returns the current checkout draft and probe state.
func GetDeliveryHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildDeliveryResponse(sess))
}

// UpdateDeliveryHandler replaces the draft. Switching away from
// delivery mode drops any captured coordinate.
func UpdateDeliveryHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	var request UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidFulfillmentMode(request.Mode) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid fulfillment mode"})
		return
	}

	sess.SetDraft(models.DeliveryDraft{
		Mode:          request.Mode,
		ClientName:    request.ClientName,
		RequestedTime: request.RequestedTime,
	})

	c.JSON(http.StatusOK, buildDeliveryResponse(sess))
}

// RequestLocationHandler starts a geolocation request for the session
// and returns the request id the browser must echo back, plus the
// options it should pass to the geolocation API: high accuracy, the
// same bounded wait the server enforces, and no cached position.
func RequestLocationHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	if sess.Draft().Mode != models.ModeDelivery {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Location only applies to delivery orders"})
		return
	}

	requestID, err := sess.Probe.Begin(models.DefaultProbeTimeout)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"request_id": requestID,
		"options": gin.H{
			"enableHighAccuracy": true,
			"timeout":            models.DefaultProbeTimeout / time.Millisecond,
			"maximumAge":         0,
		},
	})
}

// ReportLocationHandler applies the browser's answer to an earlier
// location request. Answers for a superseded request get a 410 and
// change nothing.
func ReportLocationHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	var request LocationResultRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var applied bool
	switch {
	case request.Failure != "":
		applied = sess.Probe.Fail(request.RequestID, request.Failure)
	case request.Latitude != nil && request.Longitude != nil:
		applied = sess.Probe.Resolve(request.RequestID, models.Coordinates{
			Latitude:  *request.Latitude,
			Longitude: *request.Longitude,
		})
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Either a coordinate pair or a failure reason is required"})
		return
	}

	if !applied {
		c.AbortWithStatusJSON(http.StatusGone, gin.H{"error": "Location request is no longer pending"})
		return
	}

	c.JSON(http.StatusOK, buildLocationResponse(sess))
}

// GetLocationHandler returns the probe state on its own.
func GetLocationHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildLocationResponse(sess))
}
