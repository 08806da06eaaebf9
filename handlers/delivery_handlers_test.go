package handlers

import (
	"net/http"
	"testing"

	"github.com/mkpicture/perfect-bites/models"
)

type locationRequestResponse struct {
	RequestID uint64 `json:"request_id"`
	Options   struct {
		EnableHighAccuracy bool  `json:"enableHighAccuracy"`
		Timeout            int64 `json:"timeout"`
		MaximumAge         int64 `json:"maximumAge"`
	} `json:"options"`
}

func TestUpdateDeliveryValidatesMode(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPut, "/delivery", "s1", map[string]string{"mode": "teleport"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid mode, got %d", w.Code)
	}

	var delivery DeliveryResponse
	doJSON(t, router, http.MethodPut, "/delivery", "s1", UpdateDeliveryRequest{Mode: models.ModePickup}, &delivery)
	if delivery.Mode != models.ModePickup {
		t.Fatalf("expected pickup, got %s", delivery.Mode)
	}
}

func TestLocationRequestFlow(t *testing.T) {
	router := setupRouter(t)
	const sid = "geo-session"

	var started locationRequestResponse
	w := doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, &started)
	if w.Code != http.StatusAccepted {
		t.Fatalf("request: status %d", w.Code)
	}
	if started.RequestID == 0 {
		t.Fatal("expected a request id")
	}
	if !started.Options.EnableHighAccuracy || started.Options.MaximumAge != 0 || started.Options.Timeout <= 0 {
		t.Fatalf("unexpected geolocation options %+v", started.Options)
	}

	// A second request while the first is pending is rejected.
	w = doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while in flight, got %d", w.Code)
	}

	lat, lng := -1.9441, 30.0619
	var loc LocationResponse
	w = doJSON(t, router, http.MethodPost, "/delivery/location/result", sid, LocationResultRequest{
		RequestID: started.RequestID, Latitude: &lat, Longitude: &lng,
	}, &loc)
	if w.Code != http.StatusOK {
		t.Fatalf("result: status %d", w.Code)
	}
	if loc.State != models.ProbeResolved {
		t.Fatalf("expected resolved, got %s", loc.State)
	}
	if loc.Coordinates == nil || loc.Coordinates.Latitude != lat {
		t.Fatalf("unexpected coordinates %+v", loc.Coordinates)
	}

	// A late duplicate answer for the same request is stale.
	w = doJSON(t, router, http.MethodPost, "/delivery/location/result", sid, LocationResultRequest{
		RequestID: started.RequestID, Latitude: &lat, Longitude: &lng,
	}, nil)
	if w.Code != http.StatusGone {
		t.Fatalf("expected 410 for stale result, got %d", w.Code)
	}
}

func TestLocationRequestRejectedForPickup(t *testing.T) {
	router := setupRouter(t)
	const sid = "pickup-session"

	doJSON(t, router, http.MethodPut, "/delivery", sid, UpdateDeliveryRequest{Mode: models.ModePickup}, nil)

	w := doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for pickup mode, got %d", w.Code)
	}
}

func TestLocationFailureSurfacesReason(t *testing.T) {
	router := setupRouter(t)
	const sid = "geo-fail-session"

	var started locationRequestResponse
	doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, &started)

	var loc LocationResponse
	doJSON(t, router, http.MethodPost, "/delivery/location/result", sid, LocationResultRequest{
		RequestID: started.RequestID, Failure: models.GeoDenied,
	}, &loc)
	if loc.State != models.ProbeIdle {
		t.Fatalf("expected idle after failure, got %s", loc.State)
	}
	if loc.LastFailure != models.GeoDenied {
		t.Fatalf("expected denied, got %s", loc.LastFailure)
	}

	// Failures are recoverable: a retry starts cleanly.
	w := doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected retry accepted, got %d", w.Code)
	}
}

func TestSwitchToPickupDiscardsCapturedLocation(t *testing.T) {
	router := setupRouter(t)
	const sid = "switch-session"

	var started locationRequestResponse
	doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, &started)
	lat, lng := -1.95, 30.06
	doJSON(t, router, http.MethodPost, "/delivery/location/result", sid, LocationResultRequest{
		RequestID: started.RequestID, Latitude: &lat, Longitude: &lng,
	}, nil)

	var delivery DeliveryResponse
	doJSON(t, router, http.MethodPut, "/delivery", sid, UpdateDeliveryRequest{Mode: models.ModePickup}, &delivery)
	if delivery.Location.Coordinates != nil {
		t.Fatalf("expected coordinate discarded, got %+v", delivery.Location.Coordinates)
	}

	doJSON(t, router, http.MethodPut, "/delivery", sid, UpdateDeliveryRequest{Mode: models.ModeDelivery}, &delivery)
	if delivery.Location.Coordinates != nil {
		t.Fatal("switching back to delivery must start with no coordinate")
	}
}

func TestLocationResultRequiresCoordinatesOrFailure(t *testing.T) {
	router := setupRouter(t)
	const sid = "bad-result-session"

	var started locationRequestResponse
	doJSON(t, router, http.MethodPost, "/delivery/location/request", sid, nil, &started)

	w := doJSON(t, router, http.MethodPost, "/delivery/location/result", sid, LocationResultRequest{
		RequestID: started.RequestID,
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
