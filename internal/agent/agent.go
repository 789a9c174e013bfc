// Package agent orchestrates the model calls behind a medical consultation:
// one markdown answer plus a nutrition and a medicine illustration.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medinfo-agent/internal/gemini"
	"medinfo-agent/internal/imaging"
)

// Generator is the remote model surface the agent depends on.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (gemini.Image, error)
}

// TextSection is the outcome of a text model call.
type TextSection struct {
	// Markdown is the model's answer, empty when the call failed.
	Markdown string

	// Err is the user-facing error line when the call failed.
	Err string
}

// ImageSection is the outcome of one image model call.
type ImageSection struct {
	// PNGBase64 holds the re-encoded PNG payload when an image arrived.
	PNGBase64 string

	// Warning is set when the model responded without an image part.
	Warning string

	// Err is the user-facing error line when the call or re-encode failed.
	Err string
}

// Report is everything a single consultation or disease lookup produces.
// Each section is filled independently; one call failing never stops the
// others.
type Report struct {
	Answer    TextSection
	Nutrition ImageSection
	Medicine  ImageSection
}

// imageKind carries the per-illustration user-facing strings.
type imageKind struct {
	name    string
	warning string
	errFmt  string
}

var (
	nutritionKind = imageKind{
		name:    "nutrition",
		warning: "No nutrition image received.",
		errFmt:  "Nutrition image error: %v",
	}

	medicineKind = imageKind{
		name:    "medicine",
		warning: "No medicine image received.",
		errFmt:  "Medicine image error: %v",
	}
)

// Agent answers medical questions through a Generator.
type Agent struct {
	generator Generator
	logger    *slog.Logger
}

// New creates an Agent over the given generator.
func New(generator Generator) *Agent {
	return &Agent{
		generator: generator,
		logger:    slog.Default(),
	}
}

// SetLogger sets a structured logger for the agent.
func (a *Agent) SetLogger(logger *slog.Logger) *Agent {
	a.logger = logger
	return a
}

// Consult answers a symptom description or health question and generates
// the two companion illustrations. A blank question produces an empty
// Report without any model calls. Illustration calls run even when the
// text call fails.
func (a *Agent) Consult(ctx context.Context, profile Profile, question string) Report {
	if strings.TrimSpace(question) == "" {
		return Report{}
	}

	var report Report
	report.Answer = a.generateAnswer(ctx, ConsultPrompt(profile, question), "Error generating medical info: %v")
	report.Nutrition = a.generateIllustration(ctx, ConsultNutritionPrompt(profile, question), nutritionKind)
	report.Medicine = a.generateIllustration(ctx, ConsultMedicinePrompt(question), medicineKind)
	return report
}

// LookupDisease produces the full disease page for a named disease: an
// explanation plus the two illustrations. A blank name produces an empty
// Report without any model calls.
func (a *Agent) LookupDisease(ctx context.Context, profile Profile, disease string) Report {
	if strings.TrimSpace(disease) == "" {
		return Report{}
	}

	var report Report
	report.Answer = a.generateAnswer(ctx, DiseasePrompt(disease), "Error generating disease info: %v")
	report.Nutrition = a.generateIllustration(ctx, DiseaseNutritionPrompt(profile, disease), nutritionKind)
	report.Medicine = a.generateIllustration(ctx, DiseaseMedicinePrompt(disease), medicineKind)
	return report
}

func (a *Agent) generateAnswer(ctx context.Context, prompt, errFmt string) TextSection {
	start := time.Now()

	a.logger.Debug("starting text generation",
		"prompt_length", len(prompt),
	)

	text, err := a.generator.GenerateText(ctx, prompt)
	duration := time.Since(start)

	if err != nil {
		a.logger.Error("text generation failed",
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return TextSection{Err: fmt.Sprintf(errFmt, err)}
	}

	a.logger.Info("text generation completed",
		"duration_ms", duration.Milliseconds(),
		"answer_length", len(text),
	)

	return TextSection{Markdown: text}
}

func (a *Agent) generateIllustration(ctx context.Context, prompt string, kind imageKind) ImageSection {
	start := time.Now()

	a.logger.Debug("starting image generation",
		"kind", kind.name,
		"prompt_length", len(prompt),
	)

	img, err := a.generator.GenerateImage(ctx, prompt)
	duration := time.Since(start)

	if err != nil {
		a.logger.Error("image generation failed",
			"kind", kind.name,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return ImageSection{Err: fmt.Sprintf(kind.errFmt, err)}
	}

	if img.Empty() {
		a.logger.Warn("no image in response",
			"kind", kind.name,
			"duration_ms", duration.Milliseconds(),
		)
		return ImageSection{Warning: kind.warning}
	}

	b64, err := imaging.ReencodeBase64(img.Data)
	if err != nil {
		a.logger.Error("image re-encode failed",
			"kind", kind.name,
			"mime_type", img.MIMEType,
			"error", err.Error(),
		)
		return ImageSection{Err: fmt.Sprintf(kind.errFmt, err)}
	}

	a.logger.Info("image generation completed",
		"kind", kind.name,
		"duration_ms", duration.Milliseconds(),
		"image_bytes", len(img.Data),
	)

	return ImageSection{PNGBase64: b64}
}
