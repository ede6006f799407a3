package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/network"
)

// handleInsert handles POST /v1/branches.
//
// Responses: 201 InsertResponse; 400 malformed body or a lone lat/lon;
// 404 name unknown to the gazetteer; 409 duplicate; 422 invalid coordinate or
// blank name; 503 placement exhausted or journal unavailable.
func (s *Server) handleInsert(c *gin.Context) {
	var req InsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: CodeInvalidRequest})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.fail(c, network.ErrEmptyName)
		return
	}

	var coord geo.Coordinate
	switch {
	case req.Lat != nil && req.Lon != nil:
		coord = geo.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	case req.Lat == nil && req.Lon == nil:
		var err error
		if coord, err = s.places.Lookup(req.Name); err != nil {
			s.fail(c, err)
			return
		}
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon must be given together", Code: CodeInvalidRequest})
		return
	}

	res, err := s.session.Insert(c.Request.Context(), req.Name, coord)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInsert(res))
}

// handleBranches handles GET /v1/branches.
func (s *Server) handleBranches(c *gin.Context) {
	snap := s.session.Snapshot()
	out := make([]BranchResponse, len(snap.Branches))
	for i, b := range snap.Branches {
		out[i] = toBranch(b)
	}

	c.JSON(http.StatusOK, BranchesResponse{Count: len(out), Branches: out})
}

// handleBranch handles GET /v1/branches/:name.
func (s *Server) handleBranch(c *gin.Context) {
	name := c.Param("name")
	b, ok := s.session.Branch(name)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "branch " + strconv.Quote(name) + " is not connected", Code: CodeUnknownBranch})
		return
	}

	c.JSON(http.StatusOK, toBranch(b))
}

// handleTree handles GET /v1/mst. With ?verify=true the tree is checked against
// a from-scratch minimum spanning tree; a mismatch is a 500.
func (s *Server) handleTree(c *gin.Context) {
	snap := s.session.Snapshot()
	resp := TreeResponse{
		Session:       snap.ID,
		Version:       snap.Version,
		Branches:      len(snap.Branches),
		Edges:         toEdges(snap.Edges),
		TotalWeightKm: snap.TotalWeight,
	}

	if verify, _ := strconv.ParseBool(c.Query("verify")); verify {
		if err := s.session.Verify(); err != nil {
			s.logger.Error("tree verification failed", "err", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeNotOptimal})
			return
		}
		ok := true
		resp.Verified = &ok
	}

	c.JSON(http.StatusOK, resp)
}

// handlePlaces handles GET /v1/places.
func (s *Server) handlePlaces(c *gin.Context) {
	entries := s.places.Entries()
	c.JSON(http.StatusOK, PlacesResponse{Count: len(entries), Places: entries})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Session: s.session.ID(), Branches: s.session.Len()})
}

// fail writes the error response for an insertion or lookup error.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "err", err)
	}

	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// statusFor maps domain errors to HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, gazetteer.ErrUnknownPlace):
		return http.StatusNotFound, CodeUnknownPlace
	case errors.Is(err, network.ErrDuplicateNode):
		return http.StatusConflict, CodeDuplicate
	case errors.Is(err, network.ErrInvalidCoordinate), errors.Is(err, network.ErrEmptyName):
		return http.StatusUnprocessableEntity, CodeInvalidCoordinate
	case errors.Is(err, network.ErrPlacementExhausted):
		return http.StatusServiceUnavailable, CodePlacementExhausted
	case errors.Is(err, network.ErrJournal):
		return http.StatusServiceUnavailable, CodeJournalUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
