package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/verificabr/verifica/internal/archive"
	"github.com/verificabr/verifica/internal/config"
	"github.com/verificabr/verifica/internal/core"
	"github.com/verificabr/verifica/internal/core/model"
	"github.com/verificabr/verifica/internal/llm"
	"github.com/verificabr/verifica/internal/search"
	"github.com/verificabr/verifica/internal/store"
)

type Server struct {
	Verifier *core.Verifier
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using environment only", cfgPath, err)
		cfg = &config.Config{}
	}

	applyEnvOverrides(cfg)

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
		cfg.LLM.Model = "gemini-1.5-flash"
	}

	// The store is the only hard startup requirement; an unsaved verdict has
	// no value to the caller.
	if cfg.Database.DSN == "" {
		log.Fatalf("MYSQL_DSN is not set")
	}
	st, err := store.NewMySQLStore(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}

	// Search providers are optional; a missing credential just disables that
	// provider at call time.
	gatherer := search.NewGatherer(
		search.NewBraveProvider(cfg.Search.BraveAPIKey, cfg.Search.BraveEndpoint),
		search.NewGoogleProvider(cfg.Search.GoogleAPIKey, cfg.Search.GoogleCSEID, cfg.Search.GoogleEndpoint),
	)

	var archiver archive.Archiver
	if cfg.Storage.Bucket != "" {
		a, err := archive.NewGCSArchiver(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Printf("Warning: image archiving disabled: %v", err)
		} else {
			archiver = a
		}
	}

	// A missing judge credential is reported per request, not at startup.
	var judge llm.LLMClient
	if cfg.LLM.APIKey != "" || strings.EqualFold(cfg.LLM.Provider, "ollama") {
		judge, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Printf("Warning: judge client unavailable: %v", err)
		}
	}

	return &Server{
		Verifier: core.NewVerifier(judge, gatherer, archiver, st),
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		// The Gemini judge and the Custom Search fallback share this key.
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = v
		}
		cfg.Search.GoogleAPIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("BRAVE_API_KEY"); v != "" {
		cfg.Search.BraveAPIKey = v
	}
	if v := os.Getenv("GOOGLE_CSE_ID"); v != "" {
		cfg.Search.GoogleCSEID = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" && cfg.Storage.CredentialsFile == "" {
		cfg.Storage.CredentialsFile = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.Database.DSN = v
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	r.POST("/verify", s.Verify)

	return r
}

type verifyRequest struct {
	Content string `json:"content"`
	URL     string `json:"url"`
}

func (s *Server) Verify(c *gin.Context) {
	if s.Verifier.LLM == nil {
		log.Printf("Judge API key not configured")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Configuração da API não encontrada",
		})
		return
	}

	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	verification, err := s.Verifier.Verify(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrEmptyRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Por favor, forneça texto, URL ou imagem para verificar",
			})
			return
		}
		log.Printf("Verification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erro interno do servidor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"verification": verification,
	})
}

func (s *Server) bindRequest(c *gin.Context) (model.Request, bool) {
	var req model.Request

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Content = c.PostForm("content")
		req.URL = c.PostForm("url")
		if fh, err := c.FormFile("imageFile"); err == nil {
			data, err := readImagePart(fh)
			if err != nil {
				log.Printf("Failed to read uploaded image: %v", err)
			} else {
				req.Image = data
			}
		}
		return req, true
	}

	var body verifyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Por favor, forneça texto, URL ou imagem para verificar",
		})
		return model.Request{}, false
	}
	req.Content = body.Content
	req.URL = body.URL
	return req, true
}

func readImagePart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image part %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image part %s: %w", fh.Filename, err)
	}
	return data, nil
}
