package core

import (
	"strings"

	"arogya-chatbot/pkg"
)

// emergencyKeywords are the phrases that trigger the emergency
// short-circuit. The list is deliberately a flat, auditable set of English
// substrings: detection must favour false positives over false negatives,
// and a keyword gate guarantees nothing on this list ever falls through to
// normal generation. Detection is English-only for now; responses exist in
// all six languages.
var emergencyKeywords = []string{
	"chest pain",
	"heart attack",
	"stroke",
	"bleeding",
	"unconscious",
	"difficulty breathing",
	"severe pain",
	"poisoning",
	"allergic reaction",
	"suicide",
	"overdose",
	"severe burn",
	"broken bone",
	"head injury",
}

// IsEmergency reports whether the text mentions any emergency keyword,
// case-insensitively, anywhere in the message. It never fails: empty or
// unmatched text is simply not an emergency.
func IsEmergency(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// emergencyMessages holds the fully pre-written safety message per language.
// Each message flags the detection, directs the caller to 108 and the
// nearest hospital, gives basic immediate-care steps, and tells them not to
// delay professional help. These never pass through the generation model.
var emergencyMessages = map[pkg.Language]string{
	pkg.LangEnglish: "🚨 This sounds like a MEDICAL EMERGENCY.\n\n" +
		"1. Call the emergency ambulance number 108 immediately.\n" +
		"2. Go to the nearest hospital or health centre without waiting.\n" +
		"3. If the person is unconscious, check their breathing and pulse.\n" +
		"4. Stay calm and stay with the person.\n" +
		"5. Do NOT delay seeking professional medical help.",
	pkg.LangHindi: "🚨 यह एक मेडिकल इमरजेंसी लगती है।\n\n" +
		"1. तुरंत एम्बुलेंस नंबर 108 पर कॉल करें।\n" +
		"2. बिना देर किए नजदीकी अस्पताल या स्वास्थ्य केंद्र जाएं।\n" +
		"3. अगर व्यक्ति बेहोश है, तो उसकी सांस और नब्ज़ जांचें।\n" +
		"4. शांत रहें और व्यक्ति के पास ही रहें।\n" +
		"5. डॉक्टरी मदद लेने में बिल्कुल देर न करें।",
	pkg.LangTelugu: "🚨 ఇది మెడికల్ ఎమర్జెన్సీలా ఉంది.\n\n" +
		"1. వెంటనే అంబులెన్స్ నంబర్ 108కు కాల్ చేయండి.\n" +
		"2. ఆలస్యం చేయకుండా దగ్గరలోని ఆసుపత్రికి లేదా ఆరోగ్య కేంద్రానికి వెళ్లండి.\n" +
		"3. వ్యక్తి స్పృహలో లేకపోతే, శ్వాస మరియు నాడిని పరీక్షించండి.\n" +
		"4. ప్రశాంతంగా ఉండండి, వ్యక్తి దగ్గరే ఉండండి.\n" +
		"5. వైద్య సహాయం పొందడంలో ఎటువంటి ఆలస్యం చేయవద్దు.",
	pkg.LangTamil: "🚨 இது ஒரு மருத்துவ அவசரநிலை போல் தெரிகிறது.\n\n" +
		"1. உடனடியாக ஆம்புலன்ஸ் எண் 108ஐ அழைக்கவும்.\n" +
		"2. தாமதிக்காமல் அருகிலுள்ள மருத்துவமனைக்கு செல்லவும்.\n" +
		"3. நபர் மயக்கமடைந்திருந்தால், சுவாசத்தையும் நாடித்துடிப்பையும் சரிபார்க்கவும்.\n" +
		"4. அமைதியாக இருங்கள், நபருடன் இருங்கள்.\n" +
		"5. மருத்துவ உதவி பெறுவதில் தாமதம் செய்ய வேண்டாம்.",
	pkg.LangOdia: "🚨 ଏହା ଏକ ମେଡିକାଲ ଜରୁରୀକାଳୀନ ପରିସ୍ଥିତି ପରି ଲାଗୁଛି।\n\n" +
		"1. ତୁରନ୍ତ ଆମ୍ବୁଲାନ୍ସ ନମ୍ବର 108କୁ କଲ କରନ୍ତୁ।\n" +
		"2. ବିଳମ୍ବ ନକରି ନିକଟସ୍ଥ ଡାକ୍ତରଖାନା କିମ୍ବା ସ୍ୱାସ୍ଥ୍ୟ କେନ୍ଦ୍ରକୁ ଯାଆନ୍ତୁ।\n" +
		"3. ଯଦି ବ୍ୟକ୍ତି ଅଚେତ ଅଛନ୍ତି, ତାଙ୍କ ନିଶ୍ୱାସ ଏବଂ ନାଡ଼ି ଯାଞ୍ଚ କରନ୍ତୁ।\n" +
		"4. ଶାନ୍ତ ରୁହନ୍ତୁ ଏବଂ ବ୍ୟକ୍ତିଙ୍କ ପାଖରେ ରୁହନ୍ତୁ।\n" +
		"5. ଡାକ୍ତରୀ ସହାୟତା ନେବାରେ ଆଦୌ ବିଳମ୍ବ କରନ୍ତୁ ନାହିଁ।",
	pkg.LangKannada: "🚨 ಇದು ವೈದ್ಯಕೀಯ ತುರ್ತುಸ್ಥಿತಿಯಂತೆ ಕಾಣುತ್ತದೆ.\n\n" +
		"1. ತಕ್ಷಣ ಆಂಬ್ಯುಲೆನ್ಸ್ ಸಂಖ್ಯೆ 108ಕ್ಕೆ ಕರೆ ಮಾಡಿ.\n" +
		"2. ತಡಮಾಡದೆ ಹತ್ತಿರದ ಆಸ್ಪತ್ರೆ ಅಥವಾ ಆರೋಗ್ಯ ಕೇಂದ್ರಕ್ಕೆ ಹೋಗಿ.\n" +
		"3. ವ್ಯಕ್ತಿ ಪ್ರಜ್ಞೆ ತಪ್ಪಿದ್ದರೆ, ಉಸಿರಾಟ ಮತ್ತು ನಾಡಿಮಿಡಿತ ಪರಿಶೀಲಿಸಿ.\n" +
		"4. ಶಾಂತವಾಗಿರಿ ಮತ್ತು ವ್ಯಕ್ತಿಯ ಜೊತೆಯಲ್ಲೇ ಇರಿ.\n" +
		"5. ವೈದ್ಯಕೀಯ ಸಹಾಯ ಪಡೆಯುವುದನ್ನು ಎಂದಿಗೂ ವಿಳಂಬ ಮಾಡಬೇಡಿ.",
}

// EmergencyResponse returns the pre-written safety message for the given
// language. An unsupported code is an explicit error: silently answering an
// emergency in the wrong language is worse than failing loudly.
func EmergencyResponse(language pkg.Language) (string, error) {
	msg, ok := emergencyMessages[language]
	if !ok {
		return "", &pkg.UnsupportedLanguageError{Code: language}
	}
	return msg, nil
}
