package retrieval

import "strings"

// expansionRule maps trigger substrings to synonym phrases appended as
// extra query variants. Triggers match in both languages.
type expansionRule struct {
	triggers []string
	synonyms []string
}

var expansionRules = []expansionRule{
	{
		triggers: []string{"转账", "汇款", "transfer"},
		synonyms: []string{"转账流程", "跨行转账", "资金转移"},
	},
	{
		triggers: []string{"贷款", "借款", "loan"},
		synonyms: []string{"贷款申请", "贷款利率", "个人消费贷款"},
	},
	{
		triggers: []string{"理财", "投资", "investment"},
		synonyms: []string{"理财产品", "投资基金", "风险收益"},
	},
	{
		triggers: []string{"资产配置", "asset allocation"},
		synonyms: []string{"投资组合", "理财产品类型与适配"},
	},
	{
		triggers: []string{"账户", "余额", "account"},
		synonyms: []string{"储蓄账户", "账户余额"},
	},
}

// ExpandQuery returns query variants, original first, deduplicated.
// Synonyms are appended when the lowercased query contains a trigger.
func ExpandQuery(query string) []string {
	lower := strings.ToLower(query)

	variants := []string{query}
	seen := map[string]bool{query: true}

	for _, rule := range expansionRules {
		matched := false
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, syn := range rule.synonyms {
			if !seen[syn] {
				seen[syn] = true
				variants = append(variants, syn)
			}
		}
	}

	return variants
}
