package summary

// specificRecommendations is the static per-symptom advice table rendered
// in the "Recommended actions" block, distinct from the knowledge base's
// general recommendations. Symptoms without an entry contribute nothing.
var specificRecommendations = map[string][]string{
	"fever": {
		"Monitor temperature every 4 hours",
		"Drink plenty of fluids (water, herbal teas, broth)",
		"Use lukewarm sponge baths if fever is high",
		"Wear lightweight clothing",
		"Avoid alcohol and caffeine",
	},
	"headache": {
		"Apply cold compress to forehead for 15 minutes",
		"Massage temples gently",
		"Practice relaxation techniques",
		"Avoid bright lights and loud noises",
		"Limit screen time",
	},
	"cough": {
		"Drink warm liquids like honey-lemon tea",
		"Use a humidifier at night",
		"Avoid smoke and strong perfumes",
		"Try throat lozenges (for adults)",
		"Sleep with head slightly elevated",
	},
	"fatigue": {
		"Maintain regular sleep schedule",
		"Take short naps (20-30 minutes)",
		"Engage in light physical activity",
		"Eat small, frequent meals",
		"Limit caffeine intake",
	},
	"nausea": {
		"Eat small, bland meals (crackers, toast)",
		"Sip ginger tea or chew ginger candy",
		"Avoid strong odors",
		"Stay hydrated with small sips of water",
		"Try acupressure wristbands",
	},
	"chest pain": {
		"Rest immediately and avoid exertion",
		"Loosen tight clothing",
		"Sit in a comfortable position",
		"Monitor for worsening symptoms",
		"Avoid eating or drinking until evaluated",
	},
	"shortness of breath": {
		"Sit upright and lean forward slightly",
		"Pursed-lip breathing technique",
		"Avoid lying flat",
		"Use a fan for air circulation",
		"Stay calm and breathe slowly",
	},
	"dizziness": {
		"Sit or lie down immediately",
		"Rise slowly from sitting/lying position",
		"Avoid sudden head movements",
		"Stay hydrated",
		"Use handrails when walking",
	},
}
