package agent

import "strings"

// Keyword sets are matched as case-insensitive substrings of the
// lowercased message. English equivalents sit next to the Chinese
// originals so mixed-language messages route the same way.
var (
	accountKeywords = []string{
		"账户", "余额", "存款", "取款", "流水", "账单", "卡",
		"account", "balance", "deposit", "withdraw", "statement",
	}

	balancePhrases = []string{
		"查询余额", "余额查询", "查余额", "我的余额", "余额是多少",
		"check balance", "check my balance", "balance inquiry",
	}

	transferKeywords = []string{
		"转账", "汇款", "收款", "付款", "跨行", "异地",
		"transfer", "remittance", "payee",
	}

	investmentKeywords = []string{
		"理财", "投资", "基金", "收益", "风险", "产品", "购买",
		"invest", "fund", "yield", "portfolio",
	}

	loanKeywords = []string{
		"贷款", "借款", "申请", "审批", "利率", "额度", "还款",
		"loan", "borrow", "interest rate", "repay",
	}
)

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// keywordScore accumulates +0.2 per distinct keyword hit, capped at 1.0.
func keywordScore(message string, keywords []string) float64 {
	lower := strings.ToLower(message)
	score := 0.0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score += 0.2
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// scoreAccount gives 0.85 on any account keyword hit, raised to 0.95
// when the message also reads as an explicit balance inquiry.
func scoreAccount(message string) float64 {
	lower := strings.ToLower(message)
	if !containsAny(lower, accountKeywords) {
		return 0.0
	}
	if containsAny(lower, balancePhrases) {
		return 0.95
	}
	return 0.85
}

// isBalanceInquiry reports whether the message matches the explicit
// balance-inquiry phrase set.
func isBalanceInquiry(message string) bool {
	return containsAny(strings.ToLower(message), balancePhrases)
}
