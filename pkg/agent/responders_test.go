package agent

import (
	"context"
	"errors"
	"testing"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetriever struct {
	results []knowledge.RetrievalResult
	queries []string
}

func (f *fakeRetriever) Search(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	f.queries = append(f.queries, query)
	return f.results
}

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.text, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.text, f.err
}

type fakeAccounts struct {
	byNumber map[string]*Account
	byUser   map[uint]*Account
	first    *Account
	err      error
}

func (f *fakeAccounts) FindByNumber(ctx context.Context, number string) (*Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byNumber[number], nil
}

func (f *fakeAccounts) FindByUser(ctx context.Context, userID uint) (*Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeAccounts) FindDefault(ctx context.Context) (*Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.first, nil
}

func testDeps(ret *fakeRetriever, provider llm.LLMProvider, accounts AccountReader) Deps {
	return Deps{
		Retriever: ret,
		Provider:  provider,
		Accounts:  accounts,
		Logger:    logger.NewNopLogger(),
	}
}

func TestAccountScoreBeatsGeneralOnAccountKeywords(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, &fakeAccounts{})
	account := NewAccountResponder(deps)
	general := NewGeneralResponder(deps)

	messages := []string{"我的账户有问题", "帮我看一下存款", "账单在哪里"}
	for _, msg := range messages {
		accountScore := account.Score(msg)
		assert.GreaterOrEqual(t, accountScore, 0.85, "message %q", msg)
		assert.Greater(t, accountScore, general.Score(msg), "message %q", msg)
	}
}

func TestAccountScoreRaisedByBalancePhrase(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, &fakeAccounts{})
	account := NewAccountResponder(deps)

	assert.Equal(t, 0.95, account.Score("查询余额"))
	assert.Equal(t, 0.85, account.Score("我想开一个账户"))
	assert.Equal(t, 0.0, account.Score("今天天气不错"))
}

func TestSpecialistKeywordScoring(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, nil)

	tests := []struct {
		responder *Responder
		message   string
		want      float64
	}{
		{NewTransferResponder(deps), "我要转账", 0.2},
		{NewTransferResponder(deps), "跨行转账怎么收款", 0.6},
		{NewInvestmentResponder(deps), "我想了解理财产品", 0.4},
		{NewLoanResponder(deps), "贷款利率和还款额度", 0.8},
		{NewLoanResponder(deps), "无关消息", 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.responder.Score(tt.message), 1e-9, "message %q", tt.message)
	}
}

func TestSpecialistScoreCappedAtOne(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, nil)
	loan := NewLoanResponder(deps)

	// Six distinct keywords would sum to 1.2 uncapped.
	score := loan.Score("贷款借款申请审批利率额度还款")
	assert.Equal(t, 1.0, score)
}

func TestBalanceInquiryWithResolvableAccount(t *testing.T) {
	accounts := &fakeAccounts{
		byUser: map[uint]*Account{
			1: {ID: 1, Number: "6226090000000123", Balance: 125000.50, Currency: "CNY"},
		},
	}
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, accounts)
	account := NewAccountResponder(deps)

	result := account.Respond(context.Background(), "查询余额", &Context{UserID: 1})

	assert.Equal(t, TypeAccount, result.AgentType)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Contains(t, result.Response, "6226090000000123")
	assert.Contains(t, result.Response, "125000.50")
	assert.Contains(t, result.Response, "CNY")
	assert.Contains(t, result.Actions, "account_balance_query")
	require.NotNil(t, result.Metadata)
	assert.Equal(t, 125000.50, result.Metadata["balance"])
}

func TestBalanceInquiryExplicitNumberWins(t *testing.T) {
	accounts := &fakeAccounts{
		byNumber: map[string]*Account{
			"622609000000099887": {ID: 2, Number: "622609000000099887", Balance: 10.00, Currency: "CNY"},
		},
		byUser: map[uint]*Account{
			1: {ID: 1, Number: "6226090000000123", Balance: 125000.50, Currency: "CNY"},
		},
	}
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, accounts)
	account := NewAccountResponder(deps)

	result := account.Respond(context.Background(), "查询余额 622609000000099887", &Context{UserID: 1})

	assert.Contains(t, result.Response, "622609000000099887")
	assert.Equal(t, uint(2), result.Metadata["account_id"])
}

func TestBalanceInquiryNoAccountGivesGuidance(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, &fakeAccounts{})
	account := NewAccountResponder(deps)

	result := account.Respond(context.Background(), "查询余额", &Context{})

	assert.Equal(t, 0.6, result.Confidence)
	assert.Nil(t, result.Metadata)
	assert.Contains(t, result.Actions, "account_inquiry")
}

func TestBalanceLookupErrorFallsThroughToRetrieval(t *testing.T) {
	ret := &fakeRetriever{}
	deps := testDeps(ret, &fakeLLM{text: "根据知识库，余额可在手机银行查看。"}, &fakeAccounts{err: errors.New("db down")})
	account := NewAccountResponder(deps)

	result := account.Respond(context.Background(), "查询余额", &Context{UserID: 1})

	// The lookup error must not surface; the generic path answers.
	assert.Equal(t, TypeAccount, result.AgentType)
	assert.Equal(t, 0.9, result.Confidence)
	assert.NotEmpty(t, ret.queries)
}

func TestGenericPathPrefixesDomainQuery(t *testing.T) {
	ret := &fakeRetriever{}
	deps := testDeps(ret, &fakeLLM{text: "好的"}, nil)
	loan := NewLoanResponder(deps)

	loan.Respond(context.Background(), "利率是多少", &Context{})

	require.Len(t, ret.queries, 1)
	assert.Equal(t, "贷款 利率是多少", ret.queries[0])
}

func TestGenerationFailureDegradesToApology(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{err: errors.New("timeout")}, nil)
	transfer := NewTransferResponder(deps)

	result := transfer.Respond(context.Background(), "我要转账", &Context{})

	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "抱歉，我暂时无法处理转账相关问题，请联系人工客服。", result.Response)
	assert.NotEmpty(t, result.Err)
}

func TestEmptyGenerationOutputDegradesToApology(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: ""}, nil)
	general := NewGeneralResponder(deps)

	result := general.Respond(context.Background(), "你好", &Context{})

	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "抱歉，我现在无法处理您的请求，请稍后再试。", result.Response)
}
