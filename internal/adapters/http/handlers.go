package httpadapter

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
	"svw.info/diagoku/internal/solver"
	"svw.info/diagoku/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Tables *board.Tables
}

func New(uc *usecase.Service, t *board.Tables) *Handler {
	return &Handler{UC: uc, Tables: t}
}

func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/api/v1")
	v1.POST("/solve", h.handleSolve)
	v1.POST("/unique", h.handleUnique)
	v1.POST("/validate", h.handleValidate)
	v1.POST("/hint", h.handleHint)
	v1.POST("/puzzles", h.handleSave)
	v1.GET("/puzzles", h.handleList)
	v1.GET("/puzzles/:id", h.handleLoad)
}

// ---- Solve ----

type solveReq struct {
	Grid string `json:"grid" binding:"required"`
}
type solveResp struct {
	Solvable   bool          `json:"solvable"`
	Grid       string        `json:"grid,omitempty"`
	Cells      domain.Values `json:"cells,omitempty"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	vals, st, err := h.UC.Solve(c.Request.Context(), req.Grid)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			c.JSON(http.StatusUnprocessableEntity, solveResp{
				Solvable:   false,
				DurationMs: st.Duration.Milliseconds(),
				Nodes:      st.Nodes,
				Error:      err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Solvable:   true,
		Grid:       h.Tables.Grid(vals),
		Cells:      vals,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Unique ----

type uniqueResp struct {
	Unique     bool   `json:"unique"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleUnique(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, st, err := h.UC.Unique(c.Request.Context(), req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, uniqueResp{
		Unique:     ok,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Cell `json:"conflicts,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Grid    string `json:"grid" binding:"required"`
	MaxTier string `json:"maxTier,omitempty"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singles":
		return domain.StrategySingles
	case "onlychoice":
		return domain.StrategyOnlyChoice
	case "twins":
		return domain.StrategyTwins
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), req.Grid, parseTier(req.MaxTier))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if _, err := h.Tables.Parse(p.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	id := c.Param("id")
	p, err := h.UC.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}
