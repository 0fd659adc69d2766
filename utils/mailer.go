package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitMailer is called once from main. When AWS config is absent (local dev,
// tests) the mailer stays disabled and sends become no-ops.
func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("AWS config load failed, email notifications disabled: %v", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendGoalCompletedEmail notifies a user that a goal reached its target.
func SendGoalCompletedEmail(to string, goalType string, targetValue float64) error {
	subject := "Goal completed 🎉"
	body := fmt.Sprintf("Congratulations! Your %s goal reached its target of %.1f.\n\nSet a new goal from your dashboard to keep the streak going.", goalType, targetValue)
	return sendEmail(to, subject, body)
}
