package agent

import "fmt"

// Profile carries the patient details woven into prompts.
type Profile struct {
	Name   string
	Age    int
	Gender string
}

// ConsultPrompt asks the text model to answer a symptom description or
// health question for the given patient.
func ConsultPrompt(p Profile, question string) string {
	return fmt.Sprintf(`You are a helpful, trustworthy medical assistant AI. Use only verified sources like WHO, Mayo Clinic, and WebMD.
Patient Name: %s
Age: %d
Gender: %s

The user asked: %s

Provide clear, trustworthy, and actionable information. Include:
- Symptoms
- Treatments
- Medicines
- Nutrition suggestions (if applicable)`, p.Name, p.Age, p.Gender, question)
}

// ConsultNutritionPrompt asks the image model for a nutrition plate
// matching the described symptoms.
func ConsultNutritionPrompt(p Profile, question string) string {
	return fmt.Sprintf("Photorealistic nutrition plate for a person with symptoms or condition described as: '%s'. Age: %d, Gender: %s. Based on WHO or Mayo Clinic guidance.",
		question, p.Age, p.Gender)
}

// ConsultMedicinePrompt asks the image model for a medicine reference
// image matching the described symptoms.
func ConsultMedicinePrompt(question string) string {
	return fmt.Sprintf("High-resolution image of common medicines or treatment kits based on symptoms: '%s', using WHO or Mayo Clinic guidance. White background.",
		question)
}

// DiseasePrompt asks the text model for a full explanation of a disease.
func DiseasePrompt(disease string) string {
	return fmt.Sprintf(`You are a trusted medical assistant. Give a comprehensive explanation about the disease: %s.
Use only WHO, Mayo Clinic, or WebMD as your references.

Include:
- Description of the disease
- Common symptoms
- Recommended treatments
- Suggested medicines (generic if possible)
- Nutrition advice if relevant`, disease)
}

// DiseaseNutritionPrompt asks the image model for a nutrition plate for
// a named disease.
func DiseaseNutritionPrompt(p Profile, disease string) string {
	return fmt.Sprintf("Photorealistic nutrition plate for a person with %s, based on WHO/Mayo Clinic dietary guidance. Age: %d, Gender: %s.",
		disease, p.Age, p.Gender)
}

// DiseaseMedicinePrompt asks the image model for a medicine reference
// image for a named disease.
func DiseaseMedicinePrompt(disease string) string {
	return fmt.Sprintf("High-resolution image of common medicines or treatment kits for %s, recommended by WHO or Mayo Clinic. White background.",
		disease)
}
