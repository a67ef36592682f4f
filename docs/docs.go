// Package docs Manu grievance analytics API.
//
// Classification, prioritisation and district analytics for citizen grievances.
//
//	 Schemes: http, https
//	 BasePath: /
//	 Version: 1.0.0
//
//	 Consumes:
//	 - application/json
//	 - multipart/form-data
//
//	 Produces:
//	 - application/json
//
//	 Security:
//	 - bearer
//
//	SecurityDefinitions:
//	bearer:
//	  type: apiKey
//	  name: Authorization
//	  in: header
//
// swagger:meta
package docs

import (
	"github.com/Gunal77/web-hackathon/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/auth/login auth login
// Issues a role token for the demo persona picker.
// responses:
//   200: loginResponse
//   400: errorResponse

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.LoginRequest
}

// A signed bearer token for the chosen role.
// swagger:response loginResponse
type loginResponseWrapper struct {
	// in:body
	Body models.LoginResponse
}

// swagger:route GET /api/v1/manus manu manus
// Lists manus filtered by id, district, taluk and q, optionally sorted by priority or pending days.
// responses:
//   200: manusResponse

// swagger:route GET /api/v1/manus/priority manu priorityManus
// Lists open manus by descending priority score.
// responses:
//   200: manusResponse

// Manus with their lifecycle label, critical type and summary.
// swagger:response manusResponse
type manusResponseWrapper struct {
	// in:body
	Body []models.ManuDetail
}

// swagger:route GET /api/v1/manus/{manu_id} manu manuByID
// Gets a single manu by ID.
// responses:
//   200: manuResponse
//   404: errorResponse

// swagger:route POST /api/v1/manus manu createManu
// Files a new manu. The store assigns the id, status and dates.
// responses:
//   201: manuResponse
//   400: errorResponse

// swagger:route PUT /api/v1/manus/{manu_id}/status manu updateManuStatus
// Moves a manu to Submitted, In Progress or Resolved.
// responses:
//   200: manuResponse
//   400: errorResponse
//   404: errorResponse

// swagger:parameters manuByID updateManuStatus
type manuIDParamWrapper struct {
	// in:path
	// required: true
	ManuID string `json:"manu_id"`
}

// swagger:parameters createManu
type createManuParamsWrapper struct {
	// in:body
	Body models.NewManuInput
}

// swagger:parameters updateManuStatus
type updateStatusParamsWrapper struct {
	// in:body
	Body models.UpdateStatusInput
}

// A single manu with its display labels.
// swagger:response manuResponse
type manuResponseWrapper struct {
	// in:body
	Body models.ManuDetail
}

// swagger:route GET /api/v1/dashboard/collector dashboard collectorDashboard
// Collector overview for a district, date range, lifecycle labels and search query.
// responses:
//   200: collectorResponse
//   400: errorResponse

// swagger:response collectorResponse
type collectorResponseWrapper struct {
	// in:body
	Body models.CollectorOverview
}

// swagger:route GET /api/v1/dashboard/officer dashboard officerDashboard
// Taluk officer worklist for ALL, HIGH_CRITICAL, SEVERE_DISTRESS or BACKLOG.
// responses:
//   200: officerResponse
//   400: errorResponse

// swagger:response officerResponse
type officerResponseWrapper struct {
	// in:body
	Body models.OfficerOverview
}

// swagger:route GET /api/v1/stats/districts stats districtStats
// Per-district rollup with map colours.
// responses:
//   200: districtStatsResponse

// swagger:response districtStatsResponse
type districtStatsResponseWrapper struct {
	// in:body
	Body []models.DistrictStats
}

// swagger:route GET /api/v1/stats/districts/{district}/taluks stats talukStats
// Per-taluk rollup of one district.
// responses:
//   200: talukStatsResponse
//   404: errorResponse

// swagger:response talukStatsResponse
type talukStatsResponseWrapper struct {
	// in:body
	Body []models.TalukStats
}

// swagger:route GET /api/v1/performance/districts performance districtPerformance
// District performance ranking.
// responses:
//   200: districtPerformanceResponse

// swagger:response districtPerformanceResponse
type districtPerformanceResponseWrapper struct {
	// in:body
	Body []models.DistrictPerformance
}

// swagger:route POST /api/v1/imports/count imports importCount
// Counts the rows of an uploaded CSV, Excel or PDF file. Nothing is stored.
// responses:
//   200: importResponse
//   400: errorResponse
//   415: errorResponse

// swagger:response importResponse
type importResponseWrapper struct {
	// in:body
	Body models.ImportResult
}

// An error message and the underlying error.
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
