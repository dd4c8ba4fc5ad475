package prompt

// DefaultSystem is the built-in trainer persona
const DefaultSystem = "You are an expert fitness trainer and nutritionist. " +
	"Create detailed, personalized workout plans with specific exercises, sets, reps, rest periods, and helpful tips. " +
	"Format your response clearly with proper structure including warm-up, main workout, and cool-down sections. " +
	"Always consider safety and proper form."

// DefaultUser wraps the raw request. {{.Prompt}} is replaced with the user's text.
const DefaultUser = `Create a detailed workout plan based on: "{{.Prompt}}". ` +
	"Include exercises, sets, reps, and rest periods. Format it clearly with days/weeks if needed. " +
	"Make it practical and safe for the fitness level mentioned."

// Default returns the built-in template
func Default() Template {
	return Template{System: DefaultSystem, User: DefaultUser}
}
