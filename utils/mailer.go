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

// InitMailer wires the SES client. Mailing is optional: when SES_EMAIL is
// unset the service runs without outbound mail and senders become no-ops.
func InitMailer() {
	if os.Getenv("SES_EMAIL") == "" {
		log.Println("SES_EMAIL not set, email notifications disabled")
		return
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
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

// SendPlanAdjustedEmail tells a user their weekly plan changed and why.
func SendPlanAdjustedEmail(to string, event string, days int) error {
	subject := "Your meal plan was adjusted"
	body := fmt.Sprintf(
		"We adjusted your weekly meal plan after your reported '%s' event.\n\n%d day(s) were updated with compensating meals. Open the app to review them.",
		event, days,
	)
	return sendEmail(to, subject, body)
}
