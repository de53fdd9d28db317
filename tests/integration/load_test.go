package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/response"
)

func postLoad(t *testing.T, token, origin, destination string) models.Load {
	body := map[string]interface{}{
		"origin":      origin,
		"destination": destination,
		"equipment":   "dry_van",
		"weight_lbs":  42000,
		"rate_cents":  185000,
		"pickup_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	resp := doRequest(t, "POST", "/loads", token, body, http.StatusCreated)

	var result response.LoadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Load.Reference)
	require.False(t, result.Load.Booked)
	return result.Load
}

func TestPostAndGetLoad(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	load := postLoad(t, shipper, "Chicago, IL", "Dallas, TX")

	resp := doRequest(t, "GET", fmt.Sprintf("/loads/%d", load.LID), shipper, nil, http.StatusOK)

	var got models.Load
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Equal(t, load.Reference, got.Reference)
	require.Equal(t, "Chicago, IL", got.Origin)
	require.False(t, got.Booked)
	require.Nil(t, got.CarrierID)
}

func TestCarrierCannotPostLoad(t *testing.T) {
	carrier := loginUser(t, "roadrunner", "123456")
	body := map[string]interface{}{
		"origin":      "Reno, NV",
		"destination": "Boise, ID",
		"equipment":   "reefer",
		"rate_cents":  90000,
		"pickup_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}
	doRequest(t, "POST", "/loads", carrier, body, http.StatusForbidden)
}

func TestBookLoad(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	carrier := loginUser(t, "roadrunner", "123456")
	load := postLoad(t, shipper, "Atlanta, GA", "Miami, FL")

	resp := doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), carrier, nil, http.StatusOK)

	var result response.LoadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.True(t, result.Load.Booked)
	require.NotNil(t, result.Load.CarrierID)
}

func TestBookLoadTwiceConflicts(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	first := loginUser(t, "roadrunner", "123456")
	second := loginUser(t, "coyote", "123456")
	load := postLoad(t, shipper, "Denver, CO", "Salt Lake City, UT")

	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), first, nil, http.StatusOK)
	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), second, nil, http.StatusConflict)
}

func TestShipperCannotBook(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	load := postLoad(t, shipper, "Portland, OR", "Seattle, WA")

	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), shipper, nil, http.StatusForbidden)
}

func TestReleaseLoad(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	carrier := loginUser(t, "roadrunner", "123456")
	load := postLoad(t, shipper, "Phoenix, AZ", "El Paso, TX")

	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), carrier, nil, http.StatusOK)
	resp := doRequest(t, "POST", fmt.Sprintf("/loads/%d/release", load.LID), carrier, nil, http.StatusOK)

	var result response.LoadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.False(t, result.Load.Booked)
	require.Nil(t, result.Load.CarrierID)
}

func TestReleaseUnbookedLoadConflicts(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	load := postLoad(t, shipper, "Omaha, NE", "Kansas City, MO")

	doRequest(t, "POST", fmt.Sprintf("/loads/%d/release", load.LID), shipper, nil, http.StatusConflict)
}

func TestListAvailableLoads(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	carrier := loginUser(t, "roadrunner", "123456")

	open := postLoad(t, shipper, "Nashville, TN", "Memphis, TN")
	taken := postLoad(t, shipper, "Austin, TX", "Houston, TX")
	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", taken.LID), carrier, nil, http.StatusOK)

	resp := doRequest(t, "GET", "/loads?available=true", carrier, nil, http.StatusOK)

	var loads []models.Load
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &loads))

	refs := make(map[string]bool)
	for _, l := range loads {
		require.False(t, l.Booked)
		refs[l.Reference] = true
	}
	require.True(t, refs[open.Reference])
	require.False(t, refs[taken.Reference])
}

func TestUpdateBookedLoadConflicts(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	carrier := loginUser(t, "roadrunner", "123456")
	load := postLoad(t, shipper, "Tampa, FL", "Orlando, FL")

	doRequest(t, "POST", fmt.Sprintf("/loads/%d/book", load.LID), carrier, nil, http.StatusOK)

	body := map[string]interface{}{"rate_cents": 200000}
	doRequest(t, "PUT", fmt.Sprintf("/loads/%d", load.LID), shipper, body, http.StatusConflict)
}

func TestDeleteLoad(t *testing.T) {
	shipper := loginUser(t, "acme-shipping", "123456")
	load := postLoad(t, shipper, "Boston, MA", "Albany, NY")

	doRequest(t, "DELETE", fmt.Sprintf("/loads/%d", load.LID), shipper, nil, http.StatusOK)
	doRequest(t, "GET", fmt.Sprintf("/loads/%d", load.LID), shipper, nil, http.StatusNotFound)
}

func TestSchemaStatusAdminOnly(t *testing.T) {
	carrier := loginUser(t, "roadrunner", "123456")
	doRequest(t, "GET", "/admin/schema", carrier, nil, http.StatusForbidden)

	admin := loginUser(t, "root", "123456")
	resp := doRequest(t, "GET", "/admin/schema", admin, nil, http.StatusOK)

	var status response.SchemaStatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	require.True(t, status.UpToDate)
	require.Equal(t, status.Head, status.Applied[len(status.Applied)-1].Revision)
}
