package services

import (
	"fmt"
	"strings"
	"time"

	"sms-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const smsDateLayout = "02-Jan-06"

// GeneratedMessage is a synthetic bank message together with what a correct
// extraction should report for it. Category is empty when it depends on free text.
type GeneratedMessage struct {
	Text          string          `json:"text"`
	IsTransaction bool            `json:"is_transaction"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type,omitempty"`
	Merchant      string          `json:"merchant,omitempty"`
	Category      string          `json:"category,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	ReceivedAt    time.Time       `json:"received_at"`
}

// GeneratorConfig controls the mix of generated messages
type GeneratorConfig struct {
	NoiseRatio     float64
	DuplicateRatio float64
	Start          time.Time
	End            time.Time
}

type merchantProfile struct {
	Name      string
	Category  string
	MinAmount float64
	MaxAmount float64
}

// MessageGenerator produces reproducible streams of Indian bank SMS for demos and load tests
type MessageGenerator struct {
	faker     *gofakeit.Faker
	config    GeneratorConfig
	merchants []merchantProfile
	payees    []string
	handles   []string
	employers []string
}

// NewMessageGenerator creates a generator; equal seeds give equal streams
func NewMessageGenerator(seed uint64, config GeneratorConfig) *MessageGenerator {
	if config.End.IsZero() {
		config.End = time.Now()
	}
	if config.Start.IsZero() || !config.Start.Before(config.End) {
		config.Start = config.End.AddDate(0, -1, 0)
	}

	return &MessageGenerator{
		faker:     gofakeit.New(seed),
		config:    config,
		merchants: initializeMerchantPool(),
		payees:    []string{"rahul", "priya", "amit", "sneha", "vikram", "anjali", "arjun", "kavya", "rohan", "meera"},
		handles:   []string{"okaxis", "okhdfcbank", "oksbi", "ybl", "paytm"},
		employers: []string{"INFOSYS LTD", "WIPRO LTD", "TATA CONSULTANCY"},
	}
}

func initializeMerchantPool() []merchantProfile {
	return []merchantProfile{
		{"ZOMATO", "Food", 120, 1500},
		{"SWIGGY", "Food", 90, 1200},
		{"STARBUCKS", "Food", 250, 900},
		{"UBER", "Transport", 80, 900},
		{"IRCTC", "Transport", 300, 4500},
		{"AMAZON", "Shopping", 199, 25000},
		{"FLIPKART", "Shopping", 199, 30000},
		{"BIGBASKET", "Shopping", 300, 6000},
		{"NETFLIX", "Entertainment", 149, 649},
		{"BOOKMYSHOW", "Entertainment", 200, 1800},
		{"AIRTEL", "Bills", 199, 1499},
		{"APOLLO", "Healthcare", 150, 5000},
		{"ZERODHA", "Investment", 500, 50000},
	}
}

// Generate returns count messages in arrival order
func (g *MessageGenerator) Generate(count int) []GeneratedMessage {
	messages := make([]GeneratedMessage, 0, count)
	var sent []GeneratedMessage

	for len(messages) < count {
		roll := g.faker.Float64Range(0, 1)
		switch {
		case roll < g.config.NoiseRatio:
			messages = append(messages, g.noise())
		case roll < g.config.NoiseRatio+g.config.DuplicateRatio && len(sent) > 0:
			messages = append(messages, sent[g.faker.IntRange(0, len(sent)-1)])
		default:
			msg := g.transaction()
			sent = append(sent, msg)
			messages = append(messages, msg)
		}
	}
	return messages
}

func (g *MessageGenerator) transaction() GeneratedMessage {
	switch g.faker.IntRange(0, 9) {
	case 0, 1, 2, 3:
		return g.upiDebit()
	case 4, 5:
		return g.cardSpend()
	case 6, 7:
		return g.upiTransfer()
	default:
		return g.salaryCredit()
	}
}

func (g *MessageGenerator) upiDebit() GeneratedMessage {
	m := g.merchants[g.faker.IntRange(0, len(g.merchants)-1)]
	amount := g.amount(m.MinAmount, m.MaxAmount)
	ref := g.faker.Numerify("############")
	at := g.timestamp()

	text := fmt.Sprintf("Rs.%s debited from A/c XX%s on %s at %s. UPI Ref No %s. Avl bal Rs.%s",
		amount.StringFixed(2), g.faker.Numerify("####"), at.Format(smsDateLayout), m.Name, ref,
		g.amount(1000, 90000).StringFixed(2))

	return GeneratedMessage{
		Text: text, IsTransaction: true, Amount: amount, Type: models.LedgerTypeExpense,
		Merchant: m.Name, Category: m.Category, Reference: ref, ReceivedAt: at,
	}
}

func (g *MessageGenerator) cardSpend() GeneratedMessage {
	m := g.merchants[g.faker.IntRange(0, len(g.merchants)-1)]
	amount := g.amount(m.MinAmount, m.MaxAmount)
	ref := g.faker.Numerify("############")
	at := g.timestamp()

	text := fmt.Sprintf("INR %s spent at %s on Bank Card XX%s on %s %s. Txn ID %s",
		amount.StringFixed(2), m.Name, g.faker.Numerify("####"), at.Format(smsDateLayout), at.Format("15:04"), ref)

	return GeneratedMessage{
		Text: text, IsTransaction: true, Amount: amount, Type: models.LedgerTypeExpense,
		Merchant: m.Name, Category: m.Category, Reference: ref, ReceivedAt: at,
	}
}

func (g *MessageGenerator) upiTransfer() GeneratedMessage {
	amount := g.amount(50, 20000)
	ref := g.faker.Numerify("############")
	vpa := g.faker.RandomString(g.payees) + "@" + g.faker.RandomString(g.handles)

	return GeneratedMessage{
		Text:          fmt.Sprintf("Rs.%s sent to %s via UPI. UPI Ref %s", amount.StringFixed(2), vpa, ref),
		IsTransaction: true,
		Amount:        amount,
		Type:          models.LedgerTypeTransfer,
		Reference:     ref,
		ReceivedAt:    g.timestamp(),
	}
}

func (g *MessageGenerator) salaryCredit() GeneratedMessage {
	amount := g.amount(25000, 250000)
	ref := g.faker.Numerify("############")
	at := g.timestamp()

	text := fmt.Sprintf("Rs.%s credited to A/c XX%s on %s by NEFT from %s. Info: SALARY. UTR %s",
		amount.StringFixed(2), g.faker.Numerify("####"), at.Format(smsDateLayout), g.faker.RandomString(g.employers), ref)

	return GeneratedMessage{
		Text: text, IsTransaction: true, Amount: amount, Type: models.LedgerTypeIncome,
		Category: "Income", Reference: ref, ReceivedAt: at,
	}
}

func (g *MessageGenerator) noise() GeneratedMessage {
	templates := []string{
		"%s is your OTP for login. Valid for 10 minutes. Do not share it with anyone.",
		"Your order #%s has been shipped and will arrive tomorrow.",
		"Reminder: your appointment is confirmed for slot %s.",
		"Get 50%% off on your next ride! Use code SAVE%s before Sunday.",
	}
	tmpl := templates[g.faker.IntRange(0, len(templates)-1)]

	return GeneratedMessage{
		Text:       fmt.Sprintf(tmpl, g.faker.Numerify("######")),
		ReceivedAt: g.timestamp(),
	}
}

func (g *MessageGenerator) amount(minAmount, maxAmount float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(minAmount, maxAmount)).Round(2)
}

// timestamp picks a minute-aligned time within business hours
func (g *MessageGenerator) timestamp() time.Time {
	day := g.faker.DateRange(g.config.Start, g.config.End)
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(g.faker.IntRange(6*60, 23*60)) * time.Minute)
}

// Texts returns only the message bodies
func Texts(messages []GeneratedMessage) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = strings.TrimSpace(m.Text)
	}
	return out
}
