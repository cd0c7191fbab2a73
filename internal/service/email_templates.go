package service

import "fmt"

func welcomeEmailTemplate(username, browseURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Free tutorials are waiting for you:
%s

Upgrade to premium any time to unlock the full library.

Best,
The %s Team`, username, browseURL, appName)

	return subject, body
}

func premiumGrantedEmailTemplate(username, subscriptionType, premiumURL, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s premium access is active", appName)
	body := fmt.Sprintf(`Hi %s,

Your %s premium membership is now active. Start watching:
%s

Best,
The %s Team`, username, subscriptionType, premiumURL, appName)

	return subject, body
}

func premiumRevokedEmailTemplate(username, plansURL, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s premium access has ended", appName)
	body := fmt.Sprintf(`Hi %s,

Your premium membership has ended. Free content is still available to you.

You can pick a plan again here:
%s

Best,
The %s Team`, username, plansURL, appName)

	return subject, body
}
