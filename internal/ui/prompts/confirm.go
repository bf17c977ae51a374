package prompts

import "github.com/AlecAivazis/survey/v2"

func iconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// Confirm asks a yes/no question that defaults to no.
func Confirm(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := survey.AskOne(prompt, &confirmed, iconOption()); err != nil {
		return false, err
	}
	return confirmed, nil
}
