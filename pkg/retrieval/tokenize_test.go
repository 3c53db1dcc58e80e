package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSplitsOnPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"ascii", "hello, world! how are you?", []string{"hello", "world", "how", "are", "you"}},
		{"cjk punctuation", "转账流程：第一步，登录网银。", []string{"转账流程", "第一步", "登录网银"}},
		{"mixed", "balance（余额） check", []string{"balance", "余额", "check"}},
		{"empty", "，。！", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestJaccard(t *testing.T) {
	a := []string{"转账", "流程"}
	b := []string{"转账", "手续费"}

	// intersection 1, union 3
	assert.InDelta(t, 1.0/3.0, Jaccard(a, b), 1e-9)
	assert.Equal(t, 1.0, Jaccard(a, a))
	assert.Equal(t, 0.0, Jaccard(nil, nil))
	assert.Equal(t, 0.0, Jaccard(a, nil))
}

func TestExpandQueryOriginalFirstAndDeduplicated(t *testing.T) {
	variants := ExpandQuery("我想了解转账和贷款")

	assert.Equal(t, "我想了解转账和贷款", variants[0])
	assert.Contains(t, variants, "转账流程")
	assert.Contains(t, variants, "贷款申请")

	seen := map[string]int{}
	for _, v := range variants {
		seen[v]++
	}
	for v, count := range seen {
		assert.Equal(t, 1, count, "variant %q duplicated", v)
	}
}

func TestExpandQueryEnglishTrigger(t *testing.T) {
	variants := ExpandQuery("How does Asset Allocation work?")

	assert.Contains(t, variants, "理财产品类型与适配")
}

func TestExpandQueryNoTrigger(t *testing.T) {
	variants := ExpandQuery("今天天气怎么样")

	assert.Equal(t, []string{"今天天气怎么样"}, variants)
}
