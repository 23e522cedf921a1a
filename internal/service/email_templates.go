package service

import "fmt"

func goalReachedEmailTemplate(name, message, appName string) (string, string) {
	subject := "Goal Completed!"
	body := fmt.Sprintf(`Hi %s,

%s

Keep up the great work. You can review today's progress on your dashboard.

Best,
The %s Team`, name, message, appName)

	return subject, body
}

func welcomeEmailTemplate(name, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Log your first meal, set a daily goal, and we'll
let you know the moment you hit your targets.

Best,
The %s Team`, name, appName)

	return subject, body
}
