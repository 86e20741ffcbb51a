package core

import "arogya-chatbot/pkg"

// KnowledgeBase is the read-only corpus of curated medical documents the
// retriever searches. It is constructed once at startup and never mutated,
// so concurrent readers need no locking.
type KnowledgeBase struct {
	docs []pkg.MedicalDocument
}

// NewKnowledgeBase wraps the given documents. The caller must not modify the
// slice afterwards.
func NewKnowledgeBase(docs []pkg.MedicalDocument) *KnowledgeBase {
	return &KnowledgeBase{docs: docs}
}

// Documents returns every document in corpus order.
func (kb *KnowledgeBase) Documents() []pkg.MedicalDocument {
	return kb.docs
}

// ByLanguage returns the documents tagged with the given language, in corpus
// order. An empty result is normal for languages whose content has not been
// authored yet.
func (kb *KnowledgeBase) ByLanguage(lang pkg.Language) []pkg.MedicalDocument {
	var out []pkg.MedicalDocument
	for _, d := range kb.docs {
		if d.Language == lang {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of documents in the corpus.
func (kb *KnowledgeBase) Len() int { return len(kb.docs) }

// DefaultKnowledgeBase returns the built-in corpus. Content currently covers
// English, Hindi and Telugu; Tamil, Odia and Kannada entries are still being
// authored, so queries in those languages retrieve nothing.
func DefaultKnowledgeBase() *KnowledgeBase {
	return NewKnowledgeBase([]pkg.MedicalDocument{
		{
			ID:    "fever-1",
			Title: "Fever Management",
			Content: "Fever is a common symptom where body temperature rises above 37.5 degrees Celsius. " +
				"For mild fever, rest and drink plenty of fluids such as water, coconut water and ORS solution. " +
				"Sponge the body with lukewarm water to bring the temperature down. " +
				"Paracetamol can help reduce fever, but consult a doctor for the right dose. " +
				"See a doctor immediately if fever lasts more than three days, crosses 39 degrees, or comes with rash, stiff neck or confusion.",
			Category: "symptoms",
			Tags:     []string{"fever", "temperature", "paracetamol", "hydration"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "diarrhea-1",
			Title: "Diarrhea and Dehydration",
			Content: "Diarrhea means passing loose watery stools three or more times a day. " +
				"The biggest danger is dehydration, especially in children and the elderly. " +
				"Give ORS solution after every loose stool and continue normal feeding. " +
				"Zinc supplements help children recover faster. " +
				"Go to a health centre if there is blood in the stool, high fever, or signs of dehydration such as sunken eyes, dry mouth or very little urine.",
			Category: "symptoms",
			Tags:     []string{"diarrhea", "dehydration", "ors", "stomach"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "vaccination-1",
			Title: "Child Vaccination Schedule",
			Content: "Vaccines protect children from dangerous diseases like polio, measles, tetanus and tuberculosis. " +
				"At birth a child should receive BCG, oral polio and hepatitis B vaccines. " +
				"Further doses follow at 6, 10 and 14 weeks, with measles vaccine at 9 months. " +
				"All these vaccines are free at government health centres and anganwadi centres. " +
				"Keep the vaccination card safe and never miss a scheduled dose.",
			Category: "vaccination",
			Tags:     []string{"vaccine", "immunization", "children", "polio", "measles"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "nutrition-1",
			Title: "Balanced Nutrition on a Budget",
			Content: "A balanced diet does not need costly food. " +
				"Combine cereals like rice or wheat with pulses such as dal to get complete protein. " +
				"Add seasonal vegetables, leafy greens and fruits available in the local market. " +
				"Eggs and milk are good protein sources where affordable. " +
				"Use iodised salt, and give growing children an extra portion of dal and green vegetables to prevent anemia.",
			Category: "prevention",
			Tags:     []string{"nutrition", "diet", "protein", "anemia", "vegetables"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "diabetes-1",
			Title: "Living with Diabetes",
			Content: "Diabetes means the body cannot control blood sugar properly. " +
				"Warning signs include frequent urination, constant thirst, unexplained weight loss and slow-healing wounds. " +
				"It is managed with regular medicine, a low-sugar diet, daily walking and periodic blood sugar checks. " +
				"Never stop prescribed medicine on your own. " +
				"Check feet daily for cuts, since diabetic wounds heal slowly and can become serious.",
			Category: "chronic-disease",
			Tags:     []string{"diabetes", "blood sugar", "insulin", "lifestyle"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "maternal-1",
			Title: "Pregnancy Care Essentials",
			Content: "Every pregnant woman should register at the nearest health centre in the first three months. " +
				"Attend at least four antenatal checkups and take iron and folic acid tablets daily. " +
				"Eat extra portions of dal, green vegetables and milk. " +
				"Plan for delivery at a health facility, not at home. " +
				"Danger signs needing immediate care: heavy bleeding, severe headache, blurred vision, fits, or reduced movement of the baby.",
			Category: "maternal-health",
			Tags:     []string{"pregnancy", "antenatal", "iron", "delivery", "mother"},
			Language: pkg.LangEnglish,
		},
		{
			ID:    "fever-2",
			Title: "बुखार का प्रबंधन",
			Content: "बुखार में शरीर का तापमान 37.5 डिग्री सेल्सियस से ऊपर चला जाता है। " +
				"हल्के बुखार में आराम करें और खूब पानी, नारियल पानी और ओआरएस घोल पिएं। " +
				"गुनगुने पानी से शरीर पोंछने पर तापमान कम होता है। " +
				"पैरासिटामोल बुखार कम कर सकती है, लेकिन सही खुराक के लिए डॉक्टर से पूछें। " +
				"अगर बुखार तीन दिन से ज्यादा रहे, 39 डिग्री से ऊपर जाए, या चकत्ते और गर्दन में अकड़न हो तो तुरंत डॉक्टर को दिखाएं।",
			Category: "symptoms",
			Tags:     []string{"fever", "बुखार", "तापमान", "पैरासिटामोल"},
			Language: pkg.LangHindi,
		},
		{
			ID:    "diarrhea-2",
			Title: "दस्त और निर्जलीकरण",
			Content: "दिन में तीन या अधिक बार पतले दस्त होना अतिसार कहलाता है। " +
				"सबसे बड़ा खतरा निर्जलीकरण है, खासकर बच्चों और बुजुर्गों में। " +
				"हर दस्त के बाद ओआरएस घोल दें और सामान्य खाना जारी रखें। " +
				"बच्चों को जिंक की गोली देने से जल्दी आराम मिलता है। " +
				"मल में खून, तेज बुखार, धंसी आंखें या बहुत कम पेशाब होने पर स्वास्थ्य केंद्र जाएं।",
			Category: "symptoms",
			Tags:     []string{"diarrhea", "दस्त", "निर्जलीकरण", "ओआरएस"},
			Language: pkg.LangHindi,
		},
		{
			ID:    "vaccination-2",
			Title: "बच्चों का टीकाकरण",
			Content: "टीके बच्चों को पोलियो, खसरा, टेटनस और टीबी जैसी खतरनाक बीमारियों से बचाते हैं। " +
				"जन्म के समय बीसीजी, पोलियो की खुराक और हेपेटाइटिस बी का टीका लगना चाहिए। " +
				"इसके बाद 6, 10 और 14 सप्ताह पर खुराकें और 9 महीने पर खसरे का टीका लगता है। " +
				"सरकारी स्वास्थ्य केंद्र और आंगनवाड़ी में सभी टीके मुफ्त लगते हैं। " +
				"टीकाकरण कार्ड संभालकर रखें और कोई खुराक न छोड़ें।",
			Category: "vaccination",
			Tags:     []string{"vaccine", "टीका", "टीकाकरण", "बच्चे"},
			Language: pkg.LangHindi,
		},
		{
			ID:    "maternal-2",
			Title: "गर्भावस्था की देखभाल",
			Content: "हर गर्भवती महिला को पहले तीन महीनों में नजदीकी स्वास्थ्य केंद्र में पंजीकरण कराना चाहिए। " +
				"कम से कम चार प्रसव-पूर्व जांच कराएं और रोज आयरन व फोलिक एसिड की गोली लें। " +
				"दाल, हरी सब्जियां और दूध ज्यादा मात्रा में लें। " +
				"प्रसव घर पर नहीं, स्वास्थ्य केंद्र में कराएं। " +
				"खतरे के संकेत: ज्यादा खून बहना, तेज सिरदर्द, धुंधला दिखना, दौरे, या बच्चे की हलचल कम होना।",
			Category: "maternal-health",
			Tags:     []string{"pregnancy", "गर्भावस्था", "आयरन", "प्रसव"},
			Language: pkg.LangHindi,
		},
		{
			ID:    "fever-3",
			Title: "జ్వరం నిర్వహణ",
			Content: "జ్వరంలో శరీర ఉష్ణోగ్రత 37.5 డిగ్రీల సెల్సియస్ కంటే పెరుగుతుంది. " +
				"తేలికపాటి జ్వరానికి విశ్రాంతి తీసుకోండి, నీరు, కొబ్బరి నీరు మరియు ఓఆర్ఎస్ ద్రావణం ఎక్కువగా తాగండి. " +
				"గోరువెచ్చని నీటితో శరీరాన్ని తుడిస్తే ఉష్ణోగ్రత తగ్గుతుంది. " +
				"పారాసిటమాల్ జ్వరాన్ని తగ్గించగలదు, కానీ సరైన మోతాదు కోసం వైద్యుడిని సంప్రదించండి. " +
				"జ్వరం మూడు రోజులు మించితే, 39 డిగ్రీలు దాటితే, లేదా దద్దుర్లు, మెడ బిగుసుకుపోవడం ఉంటే వెంటనే వైద్యుడిని కలవండి.",
			Category: "symptoms",
			Tags:     []string{"fever", "జ్వరం", "ఉష్ణోగ్రత", "పారాసిటమాల్"},
			Language: pkg.LangTelugu,
		},
		{
			ID:    "vaccination-3",
			Title: "పిల్లల టీకాలు",
			Content: "టీకాలు పిల్లలను పోలియో, తట్టు, ధనుర్వాతం మరియు క్షయ వంటి ప్రమాదకరమైన వ్యాధుల నుండి కాపాడతాయి. " +
				"పుట్టిన వెంటనే బీసీజీ, పోలియో చుక్కలు మరియు హెపటైటిస్ బి టీకా వేయించాలి. " +
				"తరువాత 6, 10, 14 వారాల్లో మోతాదులు, 9 నెలలకు తట్టు టీకా వేస్తారు. " +
				"ప్రభుత్వ ఆరోగ్య కేంద్రాలు మరియు అంగన్వాడీలలో అన్ని టీకాలు ఉచితం. " +
				"టీకా కార్డును జాగ్రత్తగా ఉంచండి, ఏ మోతాదు వదలవద్దు.",
			Category: "vaccination",
			Tags:     []string{"vaccine", "టీకా", "పిల్లలు", "పోలియో"},
			Language: pkg.LangTelugu,
		},
		{
			ID:    "nutrition-3",
			Title: "సమతుల ఆహారం",
			Content: "సమతుల ఆహారానికి ఖరీదైన పదార్థాలు అవసరం లేదు. " +
				"అన్నం లేదా గోధుమలతో పాటు పప్పు తీసుకుంటే పూర్తి ప్రోటీన్ లభిస్తుంది. " +
				"స్థానిక మార్కెట్లో దొరికే కాలానుగుణ కూరగాయలు, ఆకుకూరలు మరియు పండ్లు చేర్చండి. " +
				"వీలైనప్పుడు గుడ్లు మరియు పాలు మంచి ప్రోటీన్ వనరులు. " +
				"అయోడైజ్డ్ ఉప్పు వాడండి, రక్తహీనత రాకుండా పిల్లలకు పప్పు, ఆకుకూరలు ఎక్కువగా పెట్టండి.",
			Category: "prevention",
			Tags:     []string{"nutrition", "ఆహారం", "ప్రోటీన్", "రక్తహీనత"},
			Language: pkg.LangTelugu,
		},
	})
}
