package server

import (
	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/mst"
	"github.com/katalvlaran/branchnet/network"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeUnknownPlace       = "unknown_place"
	CodeUnknownBranch      = "unknown_branch"
	CodeDuplicate          = "duplicate_branch"
	CodeInvalidCoordinate  = "invalid_coordinate"
	CodePlacementExhausted = "placement_exhausted"
	CodeJournalUnavailable = "journal_unavailable"
	CodeNotOptimal         = "tree_not_optimal"
	CodeInternal           = "internal"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the machine-readable error code.
	Code string `json:"code,omitempty"`
}

// InsertRequest is the body of POST /v1/branches.
// Lat and Lon are both set or both omitted; omitted coordinates come from the gazetteer.
type InsertRequest struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// EdgeResponse is one tree edge.
type EdgeResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	WeightKm float64 `json:"weight_km"`
}

// InsertResponse describes an accepted branch.
type InsertResponse struct {
	Seq  int     `json:"seq"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`

	// Edge is the attachment edge; null for the first branch.
	Edge *EdgeResponse `json:"edge"`

	// Rewired lists tree edges the insertion displaced.
	Rewired []EdgeResponse `json:"rewired,omitempty"`

	TotalWeightKm float64 `json:"total_weight_km"`
}

// BranchResponse is one branch of the network.
type BranchResponse struct {
	Seq         int     `json:"seq"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ConnectedTo string  `json:"connected_to,omitempty"`
	DistanceKm  float64 `json:"distance_km"`
}

// BranchesResponse lists all branches in insertion order.
type BranchesResponse struct {
	Count    int              `json:"count"`
	Branches []BranchResponse `json:"branches"`
}

// TreeResponse is the current spanning tree.
type TreeResponse struct {
	Session       string         `json:"session"`
	Version       uint64         `json:"version"`
	Branches      int            `json:"branches"`
	Edges         []EdgeResponse `json:"edges"`
	TotalWeightKm float64        `json:"total_weight_km"`

	// Verified is set when the request asked for verification.
	Verified *bool `json:"verified,omitempty"`
}

// PlacesResponse lists the gazetteer.
type PlacesResponse struct {
	Count  int               `json:"count"`
	Places []gazetteer.Entry `json:"places"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Session  string `json:"session"`
	Branches int    `json:"branches"`
}

func toEdge(e mst.Edge) EdgeResponse {
	return EdgeResponse{From: e.From, To: e.To, WeightKm: e.Weight}
}

func toEdges(es []mst.Edge) []EdgeResponse {
	out := make([]EdgeResponse, len(es))
	for i, e := range es {
		out[i] = toEdge(e)
	}

	return out
}

func toBranch(b network.Branch) BranchResponse {
	return BranchResponse{
		Seq:         b.Seq,
		Name:        b.Name,
		Lat:         b.Coord.Lat,
		Lon:         b.Coord.Lon,
		X:           b.Position.X,
		Y:           b.Position.Y,
		ConnectedTo: b.ConnectedTo,
		DistanceKm:  b.DistanceKm,
	}
}

func toInsert(r network.Result) InsertResponse {
	resp := InsertResponse{
		Seq:           r.Seq,
		Name:          r.Name,
		Lat:           r.Coord.Lat,
		Lon:           r.Coord.Lon,
		X:             r.Position.X,
		Y:             r.Position.Y,
		TotalWeightKm: r.TotalWeight,
	}
	if r.Edge != nil {
		e := toEdge(*r.Edge)
		resp.Edge = &e
	}
	if len(r.Removed) > 0 {
		resp.Rewired = toEdges(r.Removed)
	}

	return resp
}
