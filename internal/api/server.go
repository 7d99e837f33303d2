// Package api exposes a read-only HTTP surface over the collection data
// directory: collection runs, their videos, and the artifacts the
// pipeline wrote for each video.
package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shorts-collector/internal/config"
	"github.com/shorts-collector/internal/export"
)

// Server represents the API server
type Server struct {
	router  *gin.Engine
	dataDir string
}

// NewServer creates a new API server over the configured data directory
func NewServer(cfg *config.Config) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:  router,
		dataDir: cfg.DataDir,
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/runs", s.listRuns)
	s.router.GET("/runs/:run/summary", s.getRunSummary)
	s.router.GET("/runs/:run/videos", s.listVideos)
	s.router.GET("/runs/:run/videos/:video/data", s.artifactHandler(export.FileJSON))
	s.router.GET("/runs/:run/videos/:video/raw", s.artifactHandler(export.FileRawJSON))
	s.router.GET("/runs/:run/videos/:video/report", s.artifactHandler(export.FileText))
	s.router.GET("/runs/:run/videos/:video/transcript", s.artifactHandler(export.FileTranscript))
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// listRuns handles requests to list collection runs
func (s *Server) listRuns(c *gin.Context) {
	runs, err := subdirectories(s.dataDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// getRunSummary serves the run's resumo.json
func (s *Server) getRunSummary(c *gin.Context) {
	run, ok := safeName(c.Param("run"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run name"})
		return
	}
	s.serveFile(c, filepath.Join(s.dataDir, run, "resumo.json"))
}

// listVideos handles requests to list the video folders of one run
func (s *Server) listVideos(c *gin.Context) {
	run, ok := safeName(c.Param("run"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run name"})
		return
	}

	videos, err := subdirectories(filepath.Join(s.dataDir, run))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// artifactHandler serves one named artifact from a video folder
func (s *Server) artifactHandler(artifact string) gin.HandlerFunc {
	return func(c *gin.Context) {
		run, okRun := safeName(c.Param("run"))
		video, okVideo := safeName(c.Param("video"))
		if !okRun || !okVideo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
			return
		}
		s.serveFile(c, filepath.Join(s.dataDir, run, video, artifact))
	}
}

func (s *Server) serveFile(c *gin.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
		return
	}
	c.File(path)
}

// safeName rejects path components that could escape the data directory
func safeName(name string) (string, bool) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, true
}

func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
