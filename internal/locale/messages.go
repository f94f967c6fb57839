package locale

import "story-time/internal/domain"

// Message keys for interface strings.
const (
	MsgQuizComplete     = "quiz.complete"
	MsgCorrect          = "quiz.correct"
	MsgTryAgain         = "quiz.try_again"
	MsgQuestion         = "quiz.question"
	MsgScore            = "quiz.score"
	MsgNextQuestion     = "quiz.next_question"
	MsgFinishQuiz       = "quiz.finish"
	MsgQuizUnavailable  = "quiz.unavailable"
	MsgStoryNotFound    = "story.not_found"
	MsgComingSoon       = "story.coming_soon"
	MsgPlay             = "player.play"
	MsgPause            = "player.pause"
	MsgMute             = "player.mute"
	MsgUnmute           = "player.unmute"
	MsgLanguageLabel    = "language.label"
	MsgAboutTitle       = "about.title"
	MsgAboutSubtitle    = "about.subtitle"
	MsgAboutDescription = "about.description"
	MsgFeaturesTitle    = "about.features.title"
	MsgFeatureStory     = "about.features.story_mode"
	MsgFeatureQuiz      = "about.features.quiz_mode"
	MsgFeatureLanguages = "about.features.multilingual"
	MsgFeatureColorful  = "about.features.colorful"
	MsgMissionTitle     = "about.mission.title"
	MsgMissionText      = "about.mission.text"
)

var messages = map[string]domain.Localized[string]{
	MsgQuizComplete:    {domain.LocaleEnglish: "Quiz Complete!", domain.LocaleFilipino: "Tapos na ang Quiz!"},
	MsgCorrect:         {domain.LocaleEnglish: "Correct", domain.LocaleFilipino: "Tama"},
	MsgTryAgain:        {domain.LocaleEnglish: "Try Again", domain.LocaleFilipino: "Subukan Muli"},
	MsgQuestion:        {domain.LocaleEnglish: "Question", domain.LocaleFilipino: "Tanong"},
	MsgScore:           {domain.LocaleEnglish: "Score", domain.LocaleFilipino: "Puntos"},
	MsgNextQuestion:    {domain.LocaleEnglish: "Next Question", domain.LocaleFilipino: "Susunod na Tanong"},
	MsgFinishQuiz:      {domain.LocaleEnglish: "Finish Quiz", domain.LocaleFilipino: "Tapusin ang Quiz"},
	MsgQuizUnavailable: {domain.LocaleEnglish: "Quiz not available", domain.LocaleFilipino: "Walang quiz para dito"},
	MsgStoryNotFound:   {domain.LocaleEnglish: "Story not found", domain.LocaleFilipino: "Hindi nahanap ang kuwento"},
	MsgComingSoon:      {domain.LocaleEnglish: "Coming Soon", domain.LocaleFilipino: "Malapit Na"},
	MsgPlay:            {domain.LocaleEnglish: "Play", domain.LocaleFilipino: "I-play"},
	MsgPause:           {domain.LocaleEnglish: "Pause", domain.LocaleFilipino: "I-pause"},
	MsgMute:            {domain.LocaleEnglish: "Mute"},
	MsgUnmute:          {domain.LocaleEnglish: "Unmute"},
	MsgLanguageLabel:   {domain.LocaleEnglish: "EN", domain.LocaleFilipino: "FIL"},

	MsgAboutTitle:    {domain.LocaleEnglish: "About HIMIG", domain.LocaleFilipino: "Tungkol sa HIMIG"},
	MsgAboutSubtitle: {domain.LocaleEnglish: "Magical Stories for Children", domain.LocaleFilipino: "Mga Mahiwagang Kuwento para sa mga Bata"},
	MsgAboutDescription: {
		domain.LocaleEnglish:  "HIMIG is an interactive storytelling platform designed to inspire and educate children through engaging stories and fun quizzes.",
		domain.LocaleFilipino: "Ang HIMIG ay isang interactive na storytelling platform na idinisenyo upang magbigay-inspirasyon at magturo sa mga bata sa pamamagitan ng nakakaengganyong kuwento at masayang mga pagsusulit.",
	},
	MsgFeaturesTitle:    {domain.LocaleEnglish: "Features", domain.LocaleFilipino: "Mga Tampok"},
	MsgFeatureStory:     {domain.LocaleEnglish: "Story Mode - Read along with synchronized narration", domain.LocaleFilipino: "Story Mode - Magbasa kasama ng synchronized na pagbabasa"},
	MsgFeatureQuiz:      {domain.LocaleEnglish: "Quiz Mode - Test your understanding with interactive quizzes", domain.LocaleFilipino: "Quiz Mode - Subukan ang iyong pag-unawa sa interactive na mga pagsusulit"},
	MsgFeatureLanguages: {domain.LocaleEnglish: "Multilingual Support - Available in multiple languages", domain.LocaleFilipino: "Suporta sa Maraming Wika - Available sa maraming wika"},
	MsgFeatureColorful:  {domain.LocaleEnglish: "Colorful Design - Bright and engaging visual experience", domain.LocaleFilipino: "Makulay na Disenyo - Maliwanag at nakakaengganyong visual na karanasan"},
	MsgMissionTitle:     {domain.LocaleEnglish: "Our Mission", domain.LocaleFilipino: "Ang Aming Misyon"},
	MsgMissionText: {
		domain.LocaleEnglish:  "To make learning fun and accessible for children everywhere through the power of storytelling.",
		domain.LocaleFilipino: "Gawing masaya at naa-access ang pag-aaral para sa mga bata saanman sa pamamagitan ng kapangyarihan ng storytelling.",
	},
}

// T returns the interface string for key in locale, falling back to English.
// Unknown keys come back unchanged.
func T(l domain.Locale, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if s := m.Lookup(l); s != "" {
		return s
	}
	return key
}
