package main

// Sample is one input text run through the API.
type Sample struct {
	Name    string
	Mode    string
	Text    string
	Context string
	Style   string
}

// Samples covers every mode with short, realistic input. Fix and rephrase
// texts carry the usual non-native mistakes.
var Samples = []Sample{
	{
		Name: "fix-tiny",
		Mode: "fix",
		Text: "can you review the PR when you have time? i think is ready but not sure about error handling",
	},
	{
		Name: "fix-short",
		Mode: "fix",
		Text: "The deployment yesterday went smooth. All services is running fine and we didn't saw any errors in the logs so far.",
	},
	{
		Name: "fix-medium",
		Mode: "fix",
		Text: `I been looking into the login issue that users reported last week. The token expire while they are filling a long form and the request that triggered the refresh get lost, so they loses all the data. I can have a draft ready for thursday if you agree.`,
	},
	{
		Name: "rephrase-short",
		Mode: "rephrase",
		Text: "Sorry for the late reply, I was travelling all week.",
	},
	{
		Name: "rephrase-medium",
		Mode: "rephrase",
		Text: "I don't think we should ship this on Friday. The migration has not been tested against production data and nobody is on call during the weekend.",
	},
	{
		Name:  "flirt-playful",
		Mode:  "flirt",
		Style: "playful",
		Text:  "What are you up to this weekend?",
	},
	{
		Name:    "flirt-context",
		Mode:    "flirt",
		Style:   "confident",
		Context: "we met at a climbing gym last Tuesday",
		Text:    "Hey! I think you left your chalk bag behind",
	},
	{
		Name: "flirt-default-style",
		Mode: "flirt",
		Text: "Coffee or tea person?",
	},
}

// filterSamples keeps samples whose mode is in modes. An empty set keeps all.
func filterSamples(samples []Sample, modes map[string]bool) []Sample {
	if len(modes) == 0 {
		return samples
	}
	var out []Sample
	for _, s := range samples {
		if modes[s.Mode] {
			out = append(out, s)
		}
	}
	return out
}
