package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	baseURL = "http://localhost:3000/api"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Chat Routing API Test\n")

	// 1. Login as demo user
	color.Yellow("\n1. Login as demo_user")
	resp, body, err := sendRequest("POST", "/auth/v1/login", "", map[string]string{
		"username": "demo_user",
		"password": "demo123456",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var loginResp map[string]interface{}
	json.Unmarshal(body, &loginResp)
	var token string
	if data, ok := loginResp["data"].(map[string]interface{}); ok {
		if t, ok := data["access_token"].(string); ok {
			token = t
		}
	}
	if token == "" {
		color.Red("No token in login response")
		prettyPrint(loginResp)
		os.Exit(1)
	}

	// 2. Agent status
	color.Yellow("\n2. Get Agent Status")
	resp, body, err = sendRequest("GET", "/chat/v1/agents/status", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var statusResp map[string]interface{}
	json.Unmarshal(body, &statusResp)
	prettyPrint(statusResp)

	// 3. Routed chat messages, one per specialist domain
	messages := []string{
		"你好",
		"帮我查一下账户6226090000000123的余额",
		"我想了解一下理财产品",
		"个人消费贷款的申请条件是什么",
		"我要投诉，转人工客服",
	}

	var conversationID string
	for i, msg := range messages {
		color.Yellow("\n3.%d Send: %s", i+1, msg)
		payload := map[string]string{"message": msg}
		if conversationID != "" {
			payload["conversation_id"] = conversationID
		}
		resp, body, err = sendRequest("POST", "/chat/v1/message", token, payload)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)

		var chatResp map[string]interface{}
		json.Unmarshal(body, &chatResp)
		if data, ok := chatResp["data"].(map[string]interface{}); ok {
			if id, ok := data["conversation_id"].(string); ok {
				conversationID = id
			}
			color.Magenta("Agent: %v (confidence %v)", data["agent_type"], data["confidence"])
			fmt.Printf("Response: %v\n", data["response"])
		}
	}

	// 4. Conversation history window
	color.Yellow("\n4. Get Conversation History")
	resp, body, err = sendRequest("GET", "/chat/v1/history/"+conversationID, "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var histResp map[string]interface{}
	json.Unmarshal(body, &histResp)
	prettyPrint(histResp)

	// 5. Escalation audit trail
	color.Yellow("\n5. List Escalations")
	resp, body, err = sendRequest("GET", "/chat/v1/escalations", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var escResp map[string]interface{}
	json.Unmarshal(body, &escResp)
	prettyPrint(escResp)

	color.Cyan("\n✅ Chat routing test finished")
}
