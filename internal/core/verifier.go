package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/verificabr/verifica/internal/archive"
	"github.com/verificabr/verifica/internal/core/model"
	"github.com/verificabr/verifica/internal/core/prompt"
	"github.com/verificabr/verifica/internal/core/trigger"
	"github.com/verificabr/verifica/internal/llm"
	"github.com/verificabr/verifica/internal/store"
)

// ErrEmptyRequest rejects submissions with no content, URL, or image.
var ErrEmptyRequest = errors.New("no content, URL, or image provided")

const judgeTimeout = 30 * time.Second

// EvidenceGatherer returns formatted evidence text for a query. It is
// best-effort and never fails; *search.Gatherer satisfies it.
type EvidenceGatherer interface {
	Gather(ctx context.Context, query string) string
}

// Verifier drives one submission through the pipeline:
// validate -> search? -> compose -> judge -> parse -> archive? -> persist.
// Evidence and Archiver may be nil; those stages then degrade silently.
type Verifier struct {
	LLM      llm.LLMClient
	Evidence EvidenceGatherer
	Archiver archive.Archiver
	Store    store.Store
}

func NewVerifier(llmClient llm.LLMClient, evidence EvidenceGatherer, archiver archive.Archiver, st store.Store) *Verifier {
	return &Verifier{
		LLM:      llmClient,
		Evidence: evidence,
		Archiver: archiver,
		Store:    st,
	}
}

func (v *Verifier) Verify(ctx context.Context, req model.Request) (*store.Verification, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyRequest
	}

	content := strings.TrimSpace(req.Content)

	var evidence string
	if content != "" && trigger.NeedsSearch(content) && v.Evidence != nil {
		log.Printf("Content requires web search for verification")
		evidence = v.Evidence.Gather(ctx, content)
	}

	promptText := prompt.Compose(prompt.Input{
		Content:  content,
		URL:      strings.TrimSpace(req.URL),
		HasImage: len(req.Image) > 0,
		Evidence: evidence,
	})

	judgeCtx, cancel := context.WithTimeout(ctx, judgeTimeout)
	defer cancel()

	raw, err := v.LLM.Generate(judgeCtx, promptText)
	if err != nil {
		return nil, fmt.Errorf("judge call failed: %w", err)
	}

	verdict := ParseVerdict(raw)

	var imageURL string
	if len(req.Image) > 0 && v.Archiver != nil {
		url, err := v.Archiver.ArchiveImage(ctx, req.Image)
		if err != nil {
			log.Printf("Failed to archive image: %v", err)
		} else {
			imageURL = url
		}
	}

	rec := &store.Verification{
		Content:        req.Content,
		URL:            req.URL,
		Classification: verdict.Classification,
		Score:          verdict.Score,
		Explanation:    verdict.Explanation,
		Criteria:       verdict.Criteria,
		Sources:        verdict.Sources,
		ImageURL:       imageURL,
	}
	if rec.Criteria == nil {
		rec.Criteria = []model.Criterion{}
	}
	if rec.Sources == nil {
		rec.Sources = []model.Source{}
	}

	saved, err := v.Store.Save(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save verification: %w", err)
	}

	// Every source entry leaves with a usable URL.
	for i := range saved.Sources {
		if saved.Sources[i].URL == "" {
			saved.Sources[i].URL = "#"
		}
	}

	log.Printf("Verification saved successfully: %s", saved.ID)
	return saved, nil
}
