package web

import (
	"bytes"
	"html/template"

	"medinfo-agent/internal/agent"
	"medinfo-agent/internal/imaging"
)

// genders mirrors the options offered by the profile form.
var genders = []string{"Male", "Female", "Other"}

// pageData is shared by every page: tab selection and the profile form state.
type pageData struct {
	Active  string
	Profile agent.Profile
	Genders []string
}

// transcriptEntry is one rendered chat message.
type transcriptEntry struct {
	Role string
	HTML template.HTML
}

// imageCard is one rendered illustration: an image, a warning, or an error.
type imageCard struct {
	Title   string
	Src     template.URL
	Warning string
	Err     string
}

type chatPage struct {
	pageData
	Transcript []transcriptEntry
	HasReport  bool
	Nutrition  imageCard
	Medicine   imageCard
}

type diseasePage struct {
	pageData
	Query     string
	Submitted bool
	Answer    template.HTML
	AnswerErr string
	Nutrition imageCard
	Medicine  imageCard
}

func defaultProfile() agent.Profile {
	return agent.Profile{Gender: genders[0]}
}

// profileFromForm normalizes posted profile fields. A gender outside the
// form's options is coerced to "Other"; age bounds are enforced by binding.
func profileFromForm(name string, age int, gender string) agent.Profile {
	return agent.Profile{
		Name:   name,
		Age:    age,
		Gender: normalizeGender(gender),
	}
}

func normalizeGender(gender string) string {
	for _, option := range genders {
		if gender == option {
			return option
		}
	}
	return "Other"
}

func nutritionCard(section agent.ImageSection) imageCard {
	return buildCard("Nutrition Suggestion", section)
}

func medicineCard(section agent.ImageSection) imageCard {
	return buildCard("Medicine Reference", section)
}

func buildCard(title string, section agent.ImageSection) imageCard {
	card := imageCard{
		Title:   title,
		Warning: section.Warning,
		Err:     section.Err,
	}
	if section.PNGBase64 != "" {
		card.Src = template.URL(imaging.DataURI(section.PNGBase64))
	}
	return card
}

// renderMarkdown converts model or user text to HTML. Raw HTML in the
// source is dropped by the renderer, so the result is safe to inline.
func (h *Handler) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(src), &buf); err != nil {
		h.logger.Warn("markdown rendering failed", "error", err.Error())
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
