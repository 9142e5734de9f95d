package domain

type TransactionType string

const (
	TransactionSent     TransactionType = "sent"
	TransactionReceived TransactionType = "received"
	TransactionOffset   TransactionType = "offset"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Balance       int64  `json:"balance"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

type Transaction struct {
	ID              string          `json:"id"`
	Type            TransactionType `json:"type"`
	Description     string          `json:"description"`
	Amount          float64         `json:"amount"`
	Time            string          `json:"time"`
	Fee             *float64        `json:"fee,omitempty"`
	CarbonFootprint *float64        `json:"carbonFootprint,omitempty"`
	Category        string          `json:"category,omitempty"`
}

type SavingsGoal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
}

// Progress is the saved fraction of the target. It is derived on demand and
// never stored.
func (g SavingsGoal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Current / g.Target
}

type CarbonProject struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Impact      string        `json:"impact"`
	Status      ProjectStatus `json:"status,omitempty"`
}
