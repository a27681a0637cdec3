package services

import (
	"fmt"
	"strings"

	"github.com/fenilmodi00/ipo-monitor/config"
	"github.com/fenilmodi00/ipo-monitor/models"
	"github.com/fenilmodi00/ipo-monitor/shared"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var blockSeparator = strings.Repeat("━", 30)

// EmailService builds and sends the notification mail for a run
type EmailService struct {
	sender   string
	password string
	receiver string
	smtpHost string
	smtpPort int
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		sender:   cfg.EmailSender,
		password: cfg.EmailPassword,
		receiver: cfg.EmailReceiver,
		smtpHost: cfg.SMTPHost,
		smtpPort: cfg.SMTPPort,
	}
}

// BuildMessage renders the subject and plain-text body for the given run.
// An empty slice produces the "no large IPOs" variant.
func (s *EmailService) BuildMessage(ipos []models.QualifyingIPO, today string) (string, string) {
	if len(ipos) == 0 {
		subject := fmt.Sprintf("IPO Monitor - No Large IPOs Today (%s)", today)
		body := "No IPOs with offer amount above USD 200 million are scheduled for today."
		return subject, body
	}

	subject := fmt.Sprintf("IPO Alert - %d Large IPO(s) Today (%s)", len(ipos), today)

	var body strings.Builder
	body.WriteString("The following IPOs meet the criteria (Offer Amount > USD 200M):\n\n")

	for _, ipo := range ipos {
		body.WriteString(fmt.Sprintf(`
%s
Ticker: %s
Company: %s
IPO Date: %s
Price: $%s
Shares Offered: %s
Offer Amount: $%s
Exchange: %s
%s
`,
			blockSeparator,
			ipo.Symbol,
			ipo.Company,
			ipo.Date,
			ipo.Price.StringFixed(2),
			groupThousands(fmt.Sprintf("%d", ipo.Shares)),
			groupThousands(ipo.OfferAmount.StringFixed(2)),
			ipo.Exchange,
			blockSeparator,
		))
	}

	return subject, body.String()
}

// Send submits the notification over implicit TLS with the sender's
// credentials. A failure is returned for the job to log; it never aborts the
// run and the dialer releases the connection whether or not the send worked.
func (s *EmailService) Send(ipos []models.QualifyingIPO, today string) *shared.ServiceError {
	subject, body := s.BuildMessage(ipos, today)

	message := gomail.NewMessage()
	message.SetHeader("From", s.sender)
	message.SetHeader("To", s.receiver)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := gomail.NewDialer(s.smtpHost, s.smtpPort, s.sender, s.password)

	if err := dialer.DialAndSend(message); err != nil {
		return shared.WrapError(err, shared.ErrorCategoryNotification,
			"SEND_FAILED", "Email_Service", "send_notification", true)
	}

	logrus.Infof("Email sent successfully to %s", s.receiver)
	return nil
}

// groupThousands inserts commas into the integer part of a non-negative
// formatted number ("1234567.89" -> "1,234,567.89").
func groupThousands(number string) string {
	integerPart := number
	fractionPart := ""
	if dot := strings.Index(number, "."); dot >= 0 {
		integerPart = number[:dot]
		fractionPart = number[dot:]
	}

	var grouped strings.Builder
	for i, digit := range integerPart {
		if i > 0 && (len(integerPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return grouped.String() + fractionPart
}
