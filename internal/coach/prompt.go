package coach

import (
	"fmt"
	"strings"
)

const tipSystemPrompt = `You are a friendly German language coach for Slovenian-speaking adult learners. A learner has just answered a flashcard wrong and needs a short, memorable tip. Write headline and mnemonic in Slovenian; the example sentence is in German.`

func buildTipUserMessage(input TipInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Card type: %s\n", input.Kind))
	b.WriteString(fmt.Sprintf("Prompt (Slovenian): %s\n", input.Prompt))
	b.WriteString(fmt.Sprintf("Correct answer: %s\n", strings.Join(input.Solution, " / ")))

	if len(input.Given) == 0 {
		b.WriteString("Learner's answer: (revealed the solution without answering)\n")
	} else {
		b.WriteString(fmt.Sprintf("Learner's answer: %s\n", strings.Join(input.Given, " / ")))
	}

	b.WriteString(`
Instructions:
1. In one sentence, name the specific mistake (wrong article, wrong vowel, wrong ending, wrong word).
2. Give one vivid mnemonic connecting the German word to its Slovenian meaning or to the article's gender.
3. Give one short, natural German example sentence using the correct form.
Keep the whole tip under 60 words.`)

	return b.String()
}
