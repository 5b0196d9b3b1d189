package ai

import "fmt"

// Prompt templates per content type. Structured kinds demand a pure JSON
// answer so the parser on the other side can extract it.
const (
	promptSummary = `Summarize the following source material in %s.
Write a clear, well-structured summary in plain prose. Respond in %s only.

Source material:
%s`

	promptShortLecture = `Write a short lecture (5-8 minutes of speaking time) teaching the
key ideas of the following source material. Use %s. Structure it with a
brief introduction, the main points, and a closing recap.

Source material:
%s`

	promptAudioTrack = `Write a narration script suitable for text-to-speech audio, in %s,
covering the following source material. Use short spoken-style sentences,
no headings, no markdown.

Source material:
%s`

	promptQuiz = `Create a quiz of 5 multiple-choice questions in %s testing
understanding of the following source material. Respond with ONLY a JSON
array, no prose, where each element has this shape:
{"question": "...", "options": ["...", "...", "...", "..."], "correct_index": 0, "explanation": "..."}

Source material:
%s`

	promptFlashcard = `Create 8 study flashcards in %s from the following source material.
Respond with ONLY a JSON array, no prose, where each element has this shape:
{"front": "...", "back": "..."}

Source material:
%s`

	promptCaseStudy = `Create a case study in %s based on the following source material.
Respond with ONLY a JSON object, no prose, with this shape:
{"title": "...", "scenario": "...", "questions": ["...", "..."], "takeaways": ["...", "..."]}

Source material:
%s`

	promptVideoScript = `Write a script for a short explainer video in %s based on the
following source material. Respond with ONLY a JSON object, no prose, with
this shape:
{"hook": "...", "scenes": [{"heading": "...", "narration": "...", "visual": "..."}], "call_to_action": "..."}

Source material:
%s`
)

// buildPrompt selects the template for a content type and fills in the
// target language and source text
func buildPrompt(contentType, sourceText, language string) (string, error) {
	lang := languageName(language)

	switch contentType {
	case "summary":
		return fmt.Sprintf(promptSummary, lang, lang, sourceText), nil
	case "short_lecture":
		return fmt.Sprintf(promptShortLecture, lang, sourceText), nil
	case "audio_track":
		return fmt.Sprintf(promptAudioTrack, lang, sourceText), nil
	case "quiz":
		return fmt.Sprintf(promptQuiz, lang, sourceText), nil
	case "flashcard":
		return fmt.Sprintf(promptFlashcard, lang, sourceText), nil
	case "case_study":
		return fmt.Sprintf(promptCaseStudy, lang, sourceText), nil
	case "video_script":
		return fmt.Sprintf(promptVideoScript, lang, sourceText), nil
	}
	return "", fmt.Errorf("no prompt template for content type %q", contentType)
}

// languageName maps common language codes to the name models respond best
// to; unknown codes pass through unchanged.
func languageName(code string) string {
	names := map[string]string{
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"pt": "Portuguese",
		"it": "Italian",
		"vi": "Vietnamese",
		"ja": "Japanese",
		"ko": "Korean",
		"zh": "Chinese",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
