package agent

import (
	"fmt"
	"strings"

	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/llm"
)

const bankingSystemPrompt = `你是一个专业的银行AI智能助手，负责为客户提供优质的银行服务。

你的职责：
1. 回答银行相关问题（账户、转账、理财、贷款等）
2. 引导客户完成银行业务操作
3. 提供个性化的金融建议
4. 在必要时将客户转接给人工客服

回答要求：
1. 专业、准确、易懂
2. 保持友好、耐心的态度
3. 如果不确定答案，明确告知客户
4. 对于复杂问题，建议客户联系人工客服
5. 遵守银行保密原则，不透露客户敏感信息

回复格式：
- 直接回答客户问题
- 提供相关建议或下一步操作指引
- 如有需要，询问补充信息`

// historyWindow bounds how many trailing turns ride along with the prompt.
const historyWindow = 6

// buildMessages assembles the chat request: system prompt, retrieved
// knowledge as a context block, trailing history, then the user message.
func buildMessages(message string, results []knowledge.RetrievalResult, history []HistoryTurn) []llm.Message {
	messages := []llm.Message{
		{Role: "system", Content: bankingSystemPrompt},
	}

	if len(results) > 0 {
		var sb strings.Builder
		sb.WriteString("参考知识：\n")
		for i, r := range results {
			fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, r.Metadata.Category, r.Content)
		}
		messages = append(messages, llm.Message{Role: "system", Content: sb.String()})
	}

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, turn := range history[start:] {
		role := turn.Role
		if role != "user" && role != "assistant" {
			role = "assistant"
		}
		if turn.Content == "" {
			continue
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}

	messages = append(messages, llm.Message{Role: "user", Content: message})
	return messages
}
