package knowledge

// SymptomRecord is one entry of the static symptom knowledge base. Records
// are read-only after load; the base is injected into the matcher and the
// summary renderer so tests can substitute a smaller fixture.
type SymptomRecord struct {
	// Name is the canonical symptom identifier, unique within the base.
	Name string
	// Causes are candidate causes, display only.
	Causes []string
	// Severity is a free-form severity band, e.g. "Moderate to High".
	Severity string
	// Urgency is free-form guidance; "urgent"/"immediate" markers in it
	// promote the record into the summary's warning block.
	Urgency string
	// GeneralRecommendations is optional care advice attached to the record.
	GeneralRecommendations []string
	// FollowUp maps a language code to that symptom's follow-up question
	// templates, in ask order.
	FollowUp map[string][]string
}

var painFollowUp = []string{
	"On a scale of 1-10, how severe is your pain?",
	"Is the pain constant or does it come and go?",
	"What makes the pain better or worse?",
}

// Base returns the default knowledge base in its canonical order. The order
// matters: matched symptoms are always processed in base order.
func Base() []SymptomRecord {
	return []SymptomRecord{
		{
			Name:     "fever",
			Causes:   []string{"Viral infection", "Bacterial infection", "Inflammation", "COVID-19"},
			Severity: "Moderate to High",
			Urgency:  "Seek immediate care if temperature exceeds 103°F (39.4°C)",
			GeneralRecommendations: []string{
				"Maintain room temperature around 70°F (21°C)",
				"Change bedding frequently if sweating",
				"Eat light, easily digestible foods",
				"Avoid strenuous activity",
			},
			FollowUp: map[string][]string{
				"english": {
					"How long have you had the fever?",
					"Is the fever continuous or intermittent?",
					"Are you experiencing chills or sweating?",
				},
				"telugu": {
					"మీకు జ్వరం ఎంతకాలంగా ఉంది?",
					"జ్వరం నిరంతరంగా ఉందా లేక మధ్య మధ్య వస్తుందా?",
					"మీకు చలి లేక చెమటలు వస్తున్నాయా?",
				},
			},
		},
		{
			Name:     "headache",
			Causes:   []string{"Tension", "Migraine", "Sinusitis", "Hypertension", "Dehydration"},
			Severity: "Mild to Moderate",
			Urgency:  "Urgent if accompanied by confusion or stiff neck",
			GeneralRecommendations: []string{
				"Maintain regular sleep schedule",
				"Practice stress-reduction techniques",
				"Stay well-hydrated",
				"Consider keeping a headache diary",
			},
		},
		{
			Name:     "cough",
			Causes:   []string{"Upper respiratory infection", "Bronchitis", "Asthma", "COVID-19", "Allergies"},
			Severity: "Mild to Severe",
			Urgency:  "Urgent if difficulty breathing or coughing blood",
			FollowUp: map[string][]string{
				"english": {
					"Is your cough dry or producing mucus?",
					"How frequently are you coughing?",
					"Does anything trigger or worsen your cough?",
				},
			},
		},
		{
			Name:     "fatigue",
			Causes:   []string{"Sleep deprivation", "Anemia", "Depression", "Thyroid dysfunction", "Post-viral syndrome"},
			Severity: "Varies",
			Urgency:  "Evaluate if persistent > 2 weeks",
		},
		{
			Name:     "nausea",
			Causes:   []string{"Gastroenteritis", "Food poisoning", "Migraine", "Pregnancy", "Medication side effect"},
			Severity: "Mild to Moderate",
			Urgency:  "Urgent if severe dehydration signs present",
		},
		{
			Name:     "chest pain",
			Causes:   []string{"Heart attack", "Angina", "Pulmonary embolism", "Anxiety", "Muscle strain"},
			Severity: "High",
			Urgency:  "Seek immediate emergency care",
			FollowUp: map[string][]string{"english": painFollowUp},
		},
		{
			Name:     "shortness of breath",
			Causes:   []string{"Asthma", "Anxiety", "Heart failure", "Pneumonia", "COVID-19"},
			Severity: "High",
			Urgency:  "Seek immediate care if severe or worsening",
		},
		{
			Name:     "dizziness",
			Causes:   []string{"Low blood pressure", "Inner ear problems", "Dehydration", "Anemia", "Medication side effect"},
			Severity: "Moderate",
			Urgency:  "Urgent if accompanied by fainting or severe headache",
		},
		{
			Name:     "abdominal pain",
			Causes:   []string{"Gastritis", "Appendicitis", "Food poisoning", "Ulcer", "Gallstones"},
			Severity: "Moderate to High",
			Urgency:  "Seek immediate care if severe or accompanied by fever",
			FollowUp: map[string][]string{"english": painFollowUp},
		},
		{
			Name:     "rash",
			Causes:   []string{"Allergic reaction", "Infection", "Autoimmune condition", "Medication reaction", "Contact dermatitis"},
			Severity: "Mild to Moderate",
			Urgency:  "Urgent if accompanied by difficulty breathing or severe swelling",
		},
		{
			Name:     "joint pain",
			Causes:   []string{"Arthritis", "Injury", "Gout", "Lupus", "Fibromyalgia"},
			Severity: "Moderate",
			Urgency:  "Seek care if severe or affecting mobility",
			GeneralRecommendations: []string{
				"Apply heat or cold packs as appropriate",
				"Maintain gentle range-of-motion exercises",
				"Use supportive devices if needed (braces, canes)",
				"Maintain healthy weight to reduce joint stress",
			},
			FollowUp: map[string][]string{"english": painFollowUp},
		},
		{
			Name:     "sore throat",
			Causes:   []string{"Viral infection", "Strep throat", "Allergies", "Acid reflux", "Tonsillitis"},
			Severity: "Mild to Moderate",
			Urgency:  "Seek care if difficulty swallowing or breathing",
		},
		{
			Name:     "back pain",
			Causes:   []string{"Muscle strain", "Herniated disc", "Arthritis", "Osteoporosis", "Kidney problems"},
			Severity: "Moderate",
			Urgency:  "Urgent if accompanied by numbness or weakness",
			FollowUp: map[string][]string{"english": painFollowUp},
		},
		{
			Name:     "ear pain",
			Causes:   []string{"Ear infection", "Sinus pressure", "Tooth infection", "Earwax buildup", "Swimmer's ear"},
			Severity: "Mild to Moderate",
			Urgency:  "Seek care if severe pain or fever present",
		},
		{
			Name:     "eye problems",
			Causes:   []string{"Conjunctivitis", "Allergies", "Foreign object", "Glaucoma", "Eye strain"},
			Severity: "Moderate",
			Urgency:  "Urgent if sudden vision changes or severe pain",
		},
		{
			Name:     "stomach pain",
			Causes:   []string{"Indigestion", "Food poisoning", "Ulcer", "Appendicitis", "IBS"},
			Severity: "Moderate to High",
			Urgency:  "Seek immediate care if severe or persistent",
			FollowUp: map[string][]string{"english": painFollowUp},
		},
		{
			Name:     "muscle weakness",
			Causes:   []string{"Fatigue", "Nerve problems", "Stroke", "Multiple sclerosis", "Electrolyte imbalance"},
			Severity: "High",
			Urgency:  "Urgent if sudden onset or affecting breathing",
		},
		{
			Name:     "bleeding",
			Causes:   []string{"Injury", "Surgery", "Blood disorder", "Medication side effect", "Internal bleeding"},
			Severity: "High",
			Urgency:  "Seek immediate care if heavy or uncontrolled",
		},
		{
			Name:     "swelling",
			Causes:   []string{"Injury", "Infection", "Heart problems", "Kidney problems", "Allergic reaction"},
			Severity: "Moderate to High",
			Urgency:  "Urgent if affecting breathing or circulation",
		},
		{
			Name:     "anxiety",
			Causes:   []string{"Stress", "Panic disorder", "PTSD", "Depression", "Medical conditions"},
			Severity: "Moderate",
			Urgency:  "Seek care if affecting daily life or worsening",
		},
	}
}
