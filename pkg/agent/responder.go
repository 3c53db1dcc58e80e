package agent

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/llm"
)

// generationTimeout bounds the external generation call.
const generationTimeout = 30 * time.Second

// DemoAccountNumber is the fallback demo account for anonymous balance
// inquiries.
const DemoAccountNumber = "6226090000000123"

var accountNumberPattern = regexp.MustCompile(`\d{12,20}`)

// Responder is a closed variant: one per business domain, carrying its
// own scoring and response functions. Selection happens in the
// Coordinator, not through inheritance.
type Responder struct {
	Type         Type
	Name         string
	Capabilities []Capability
	Score        func(message string) float64
	Respond      func(ctx context.Context, message string, convCtx *Context) Result
}

func (r *Responder) Descriptor() Descriptor {
	return Descriptor{Type: r.Type, Name: r.Name, Capabilities: r.Capabilities}
}

// Deps are the collaborators responders draw on. Retriever and Provider
// may be nil in degraded deployments; responders fall back to apologies.
type Deps struct {
	Retriever Retriever
	Provider  llm.LLMProvider
	Accounts  AccountReader
	Logger    logger.ILogger
}

func NewGeneralResponder(deps Deps) *Responder {
	return &Responder{
		Type:         TypeGeneral,
		Name:         "通用客服",
		Capabilities: []Capability{CapabilityQA, CapabilityGuidance, CapabilityEscalation},
		Score: func(message string) float64 {
			// A deliberately mediocre safety net.
			return 0.6
		},
		Respond: deps.genericRespond(TypeGeneral,
			"", 5, 0.8,
			"抱歉，我现在无法处理您的请求，请稍后再试。",
			nil),
	}
}

func NewAccountResponder(deps Deps) *Responder {
	generic := deps.genericRespond(TypeAccount,
		"账户", 3, 0.9,
		"抱歉，我暂时无法处理账户相关问题，请联系人工客服。",
		[]string{"account_inquiry", "balance_check"})

	return &Responder{
		Type:         TypeAccount,
		Name:         "账户专员",
		Capabilities: []Capability{CapabilityQA, CapabilityGuidance, CapabilityTransaction},
		Score:        scoreAccount,
		Respond: func(ctx context.Context, message string, convCtx *Context) Result {
			if isBalanceInquiry(message) {
				result, err := deps.balanceLookup(ctx, message, convCtx)
				if err == nil {
					return result
				}
				// Structured lookup failed, fall through to retrieval.
				deps.Logger.Error("AccountResponder", "Balance lookup failed, falling back to retrieval", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return generic(ctx, message, convCtx)
		},
	}
}

func NewTransferResponder(deps Deps) *Responder {
	return &Responder{
		Type:         TypeTransfer,
		Name:         "转账专员",
		Capabilities: []Capability{CapabilityQA, CapabilityTransaction, CapabilitySecurity},
		Score: func(message string) float64 {
			return keywordScore(message, transferKeywords)
		},
		Respond: deps.genericRespond(TypeTransfer,
			"转账", 3, 0.9,
			"抱歉，我暂时无法处理转账相关问题，请联系人工客服。",
			[]string{"transfer_guidance", "security_check"}),
	}
}

func NewInvestmentResponder(deps Deps) *Responder {
	return &Responder{
		Type:         TypeInvestment,
		Name:         "理财专员",
		Capabilities: []Capability{CapabilityQA, CapabilityRisk, CapabilityGuidance},
		Score: func(message string) float64 {
			return keywordScore(message, investmentKeywords)
		},
		Respond: deps.genericRespond(TypeInvestment,
			"理财", 3, 0.9,
			"抱歉，我暂时无法处理理财相关问题，请联系人工客服。",
			[]string{"product_recommendation", "risk_assessment"}),
	}
}

func NewLoanResponder(deps Deps) *Responder {
	return &Responder{
		Type:         TypeLoan,
		Name:         "贷款专员",
		Capabilities: []Capability{CapabilityQA, CapabilityDocumentation, CapabilityGuidance},
		Score: func(message string) float64 {
			return keywordScore(message, loanKeywords)
		},
		Respond: deps.genericRespond(TypeLoan,
			"贷款", 3, 0.9,
			"抱歉，我暂时无法处理贷款相关问题，请联系人工客服。",
			[]string{"loan_application", "document_guidance"}),
	}
}

// genericRespond builds the shared retrieval + generation path. The
// domain prefix narrows retrieval toward the responder's territory.
// Generation failure degrades to the domain apology with confidence 0.
func (d Deps) genericRespond(t Type, prefix string, limit int, confidence float64, apology string, actions []string) func(ctx context.Context, message string, convCtx *Context) Result {
	return func(ctx context.Context, message string, convCtx *Context) Result {
		query := message
		if prefix != "" {
			query = prefix + " " + message
		}

		var results []knowledge.RetrievalResult
		if d.Retriever != nil {
			results = d.Retriever.Search(ctx, query, limit)
		}

		var history []HistoryTurn
		if convCtx != nil {
			history = convCtx.History
		}

		if d.Provider == nil {
			return Result{
				AgentType:  t,
				Response:   apology,
				Confidence: 0.0,
				Actions:    actions,
				Err:        "no generation capability configured",
			}
		}

		genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
		defer cancel()

		text, err := d.Provider.Chat(genCtx, buildMessages(message, results, history))
		if err != nil || text == "" {
			errDetail := "empty generation output"
			if err != nil {
				errDetail = err.Error()
			}
			d.Logger.Error("Responder", "Generation failed", map[string]interface{}{
				"agent_type": string(t),
				"error":      errDetail,
			})
			return Result{
				AgentType:  t,
				Response:   apology,
				Confidence: 0.0,
				Actions:    actions,
				Err:        errDetail,
			}
		}

		return Result{
			AgentType:  t,
			Response:   text,
			Confidence: confidence,
			Actions:    actions,
		}
	}
}

// balanceLookup is the Account responder's structured priority path.
// Resolution order: explicit account number in the message, then the
// authenticated user's account, then the demo account, then the first
// account on record. A reader error aborts the whole lookup so the
// caller can fall through to retrieval.
func (d Deps) balanceLookup(ctx context.Context, message string, convCtx *Context) (Result, error) {
	if d.Accounts == nil {
		return Result{}, fmt.Errorf("no account reader configured")
	}

	var account *Account
	var err error

	if number := accountNumberPattern.FindString(message); number != "" {
		account, err = d.Accounts.FindByNumber(ctx, number)
		if err != nil {
			return Result{}, fmt.Errorf("find by number: %w", err)
		}
	}

	if account == nil && convCtx != nil && convCtx.UserID != 0 {
		account, err = d.Accounts.FindByUser(ctx, convCtx.UserID)
		if err != nil {
			return Result{}, fmt.Errorf("find by user: %w", err)
		}
	}

	if account == nil {
		account, err = d.Accounts.FindByNumber(ctx, DemoAccountNumber)
		if err != nil {
			return Result{}, fmt.Errorf("find demo account: %w", err)
		}
	}

	if account == nil {
		account, err = d.Accounts.FindDefault(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("find default account: %w", err)
		}
	}

	if account == nil {
		return Result{
			AgentType:  TypeAccount,
			Response:   "请提供您的账户号码，或先登录后再查询余额。",
			Confidence: 0.6,
			Actions:    []string{"account_inquiry"},
		}, nil
	}

	return Result{
		AgentType:  TypeAccount,
		Response:   fmt.Sprintf("您的账户 %s 当前余额为 %.2f %s。", account.Number, account.Balance, account.Currency),
		Confidence: 0.95,
		Actions:    []string{"account_balance_query"},
		Metadata: map[string]interface{}{
			"account_id":     account.ID,
			"account_number": account.Number,
			"currency":       account.Currency,
			"balance":        account.Balance,
		},
	}, nil
}
