package core

// prompts.go holds every fixed piece of prompt and fallback text used by
// the pipeline. Keeping the wording in one file makes it easy to review and
// tweak without touching the surrounding logic.

import (
	"fmt"
	"strings"

	"arogya-chatbot/pkg"
)

// languageDirectives are the per-language response instructions embedded in
// every prompt. Each pairs the English instruction with its native-script
// confirmation so the model cannot mistake which language is meant.
var languageDirectives = map[pkg.Language]string{
	pkg.LangEnglish: "Respond in English.",
	pkg.LangHindi:   "Respond in Hindi. (हिंदी में जवाब दें।)",
	pkg.LangTelugu:  "Respond in Telugu. (తెలుగులో సమాధానం ఇవ్వండి.)",
	pkg.LangTamil:   "Respond in Tamil. (தமிழில் பதிலளிக்கவும்.)",
	pkg.LangOdia:    "Respond in Odia. (ଓଡ଼ିଆରେ ଉତ୍ତର ଦିଅନ୍ତୁ।)",
	pkg.LangKannada: "Respond in Kannada. (ಕನ್ನಡದಲ್ಲಿ ಉತ್ತರಿಸಿ.)",
}

const (
	// promptGuidelines is the invariant safety and behaviour block included
	// in every prompt, regardless of what was retrieved.
	promptGuidelines = `IMPORTANT GUIDELINES:
- Always provide evidence-based medical information.
- Always recommend consulting a healthcare professional for serious symptoms.
- Use simple, culturally sensitive language suitable for rural communities.
- Include preventive care advice when relevant.
- Never provide specific medication dosages without professional consultation.
- If unsure about anything, clearly say so and advise seeing a doctor.`

	// noContextPlaceholder stands in for the knowledge-base block when
	// retrieval found nothing. The section is stated, never omitted.
	noContextPlaceholder = "No specific information found in the knowledge base for this query."

	// documentSeparator visibly divides retrieved documents inside the
	// context block.
	documentSeparator = "\n---\n"

	// closingInstruction reiterates emergency handling inside the prompt
	// itself, as defense in depth alongside the keyword pre-check.
	closingInstruction = "If the question suggests a medical emergency, emphasise seeking immediate " +
		"professional care at the nearest health facility before anything else."
)

// FormatContext renders the retrieved documents into the knowledge-base
// context block, or the no-information placeholder when nothing was
// retrieved. The orchestrator also exposes this string standalone.
func FormatContext(docs []pkg.MedicalDocument) string {
	if len(docs) == 0 {
		return noContextPlaceholder
	}
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = fmt.Sprintf("Title: %s\nCategory: %s\nContent: %s\nTags: %s",
			d.Title, d.Category, d.Content, strings.Join(d.Tags, ", "))
	}
	return strings.Join(parts, documentSeparator)
}

// ComposePrompt builds the full instruction string for the generation model.
// The section order is fixed: persona and language directive, guidelines,
// knowledge-base context, the verbatim user question, then the optional
// user-context and location blocks, and the closing emergency instruction.
// It is a pure function of its inputs.
func ComposePrompt(query pkg.RAGQuery, retrieved []pkg.MedicalDocument) string {
	var b strings.Builder

	b.WriteString("You are an AI health assistant for rural communities. ")
	b.WriteString(languageDirectives[query.Language])
	b.WriteString("\n\n")

	b.WriteString(promptGuidelines)
	b.WriteString("\n\n")

	b.WriteString("MEDICAL CONTEXT FROM KNOWLEDGE BASE:\n")
	b.WriteString(FormatContext(retrieved))
	b.WriteString("\n\n")

	b.WriteString("USER QUESTION: ")
	b.WriteString(query.Query)
	b.WriteString("\n")

	if !query.UserContext.Empty() {
		b.WriteString("\nUSER CONTEXT:\n")
		if query.UserContext.Age != nil {
			fmt.Fprintf(&b, "Age: %d\n", *query.UserContext.Age)
		}
		if query.UserContext.Gender != nil {
			fmt.Fprintf(&b, "Gender: %s\n", *query.UserContext.Gender)
		}
		if len(query.UserContext.MedicalHistory) > 0 {
			fmt.Fprintf(&b, "Medical history: %s\n", strings.Join(query.UserContext.MedicalHistory, ", "))
		}
	}

	if query.Location != "" {
		fmt.Fprintf(&b, "\nUSER LOCATION: %s\n", query.Location)
	}

	b.WriteString("\n")
	b.WriteString(closingInstruction)
	return b.String()
}

// fallbackMessages are the per-language apologies substituted when the
// generation call fails, times out or returns nothing. The user never sees
// a raw error.
var fallbackMessages = map[pkg.Language]string{
	pkg.LangEnglish: "Sorry, I could not process your question right now. Please try again in a little while. " +
		"If your problem is serious, please visit the nearest health centre or consult a doctor without waiting.",
	pkg.LangHindi: "क्षमा करें, अभी आपके सवाल का जवाब नहीं दे पा रहे हैं। कृपया थोड़ी देर बाद फिर कोशिश करें। " +
		"अगर समस्या गंभीर है, तो बिना इंतजार किए नजदीकी स्वास्थ्य केंद्र जाएं या डॉक्टर से मिलें।",
	pkg.LangTelugu: "క్షమించండి, ప్రస్తుతం మీ ప్రశ్నకు సమాధానం ఇవ్వలేకపోతున్నాము. దయచేసి కాసేపటి తరువాత మళ్లీ ప్రయత్నించండి. " +
		"సమస్య తీవ్రంగా ఉంటే, ఆలస్యం చేయకుండా దగ్గరలోని ఆరోగ్య కేంద్రానికి వెళ్లండి లేదా వైద్యుడిని సంప్రదించండి.",
	pkg.LangTamil: "மன்னிக்கவும், இப்போது உங்கள் கேள்விக்கு பதிலளிக்க முடியவில்லை. சிறிது நேரம் கழித்து மீண்டும் முயற்சிக்கவும். " +
		"பிரச்சனை தீவிரமாக இருந்தால், தாமதிக்காமல் அருகிலுள்ள சுகாதார மையத்திற்கு செல்லவும் அல்லது மருத்துவரை அணுகவும்.",
	pkg.LangOdia: "କ୍ଷମା କରନ୍ତୁ, ବର୍ତ୍ତମାନ ଆପଣଙ୍କ ପ୍ରଶ୍ନର ଉତ୍ତର ଦେଇପାରୁ ନାହୁଁ। ଦୟାକରି କିଛି ସମୟ ପରେ ପୁଣି ଚେଷ୍ଟା କରନ୍ତୁ। " +
		"ସମସ୍ୟା ଗୁରୁତର ହେଲେ, ବିଳମ୍ବ ନକରି ନିକଟସ୍ଥ ସ୍ୱାସ୍ଥ୍ୟ କେନ୍ଦ୍ରକୁ ଯାଆନ୍ତୁ କିମ୍ବା ଡାକ୍ତରଙ୍କୁ ଦେଖାନ୍ତୁ।",
	pkg.LangKannada: "ಕ್ಷಮಿಸಿ, ಸದ್ಯಕ್ಕೆ ನಿಮ್ಮ ಪ್ರಶ್ನೆಗೆ ಉತ್ತರಿಸಲು ಸಾಧ್ಯವಾಗುತ್ತಿಲ್ಲ. ದಯವಿಟ್ಟು ಸ್ವಲ್ಪ ಸಮಯದ ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ. " +
		"ಸಮಸ್ಯೆ ಗಂಭೀರವಾಗಿದ್ದರೆ, ತಡಮಾಡದೆ ಹತ್ತಿರದ ಆರೋಗ್ಯ ಕೇಂದ್ರಕ್ಕೆ ಹೋಗಿ ಅಥವಾ ವೈದ್ಯರನ್ನು ಸಂಪರ್ಕಿಸಿ.",
}

// FallbackMessage returns the generic per-language apology used when
// generation fails. Unknown codes fall back to English here: unlike the
// emergency path, a wrong-language apology is better than no reply at all.
func FallbackMessage(language pkg.Language) string {
	if msg, ok := fallbackMessages[language]; ok {
		return msg
	}
	return fallbackMessages[pkg.LangEnglish]
}
