package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/diagoku/internal/adapters/http"
	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/hint"
	"svw.info/diagoku/internal/infrastructure/storage"
	"svw.info/diagoku/internal/ports"
	"svw.info/diagoku/internal/solver"
	"svw.info/diagoku/internal/usecase"
	"svw.info/diagoku/internal/validator"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("diagoku")
	}
}

func newRootCommand() *cobra.Command {
	tables := board.New()
	root := &cobra.Command{
		Use:           "diagoku",
		Short:         "Diagonal Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(tables), newServeCommand(tables))
	return root
}

func pickSolver(kind string, t *board.Tables) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	case "dlx":
		return solver.NewDLXSolver()
	default:
		return solver.NewConstraintSolver(t)
	}
}

func newSolveCommand(tables *board.Tables) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve an 81-character diagonal Sudoku grid ('.' for unknowns)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := pickSolver(kind, tables)
			vals, st, err := s.Solve(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, solver.ErrUnsolvable) {
					return fmt.Errorf("no solution (%d nodes in %v)", st.Nodes, st.Duration.Round(time.Millisecond))
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tables.Display(vals))
			fmt.Fprintln(cmd.OutOrStdout(), tables.Grid(vals))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "solver", "propagation", "solver to use: propagation|backtrack|dlx")
	return cmd
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func newServeCommand(tables *board.Tables) *cobra.Command {
	var (
		addr    string
		persist string
		level   string
		kind    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(strings.ToLower(level))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			log.Logger = log.Logger.Level(lvl)

			s := pickSolver(kind, tables)
			v := validator.New(tables)
			hin := hint.NewStrategies(tables)
			st := storage.NewFS(persist)
			uc := usecase.NewService(s, v, hin, st)
			h := httpadapter.New(uc, tables)

			gin.SetMode(gin.ReleaseMode)
			engine := gin.New()
			engine.Use(gin.Recovery(), requestLogger(log.Logger))
			h.Register(engine)

			srv := &http.Server{
				Addr:              addr,
				Handler:           engine,
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Info().Str("addr", addr).Str("persist", persist).Str("solver", kind).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&level, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&kind, "solver", "propagation", "solver to use: propagation|backtrack|dlx")
	return cmd
}
