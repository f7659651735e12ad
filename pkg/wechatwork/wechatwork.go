// Package wechatwork posts report summaries to a WeChat Work group robot.
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"

// Message is the webhook payload.
type Message struct {
	MsgType  string           `json:"msgtype"`
	Text     *TextContent     `json:"text,omitempty"`
	Markdown *MarkdownContent `json:"markdown,omitempty"`
}

type TextContent struct {
	Content             string   `json:"content"`
	MentionedList       []string `json:"mentioned_list,omitempty"`
	MentionedMobileList []string `json:"mentioned_mobile_list,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// NotificationSender is disabled when created with an empty key.
type NotificationSender struct {
	WebhookKey string
	BaseURL    string
	Enabled    bool
	Client     *http.Client
}

func NewNotificationSender(webhookKey string) *NotificationSender {
	return &NotificationSender{
		WebhookKey: webhookKey,
		BaseURL:    DefaultBaseURL,
		Enabled:    webhookKey != "",
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (ns *NotificationSender) SendText(content string, mentionedList, mentionedMobileList []string) error {
	return ns.send(Message{
		MsgType: "text",
		Text: &TextContent{
			Content:             content,
			MentionedList:       mentionedList,
			MentionedMobileList: mentionedMobileList,
		},
	})
}

func (ns *NotificationSender) SendMarkdown(content string) error {
	return ns.send(Message{
		MsgType:  "markdown",
		Markdown: &MarkdownContent{Content: content},
	})
}

func (ns *NotificationSender) send(message Message) error {
	if !ns.Enabled {
		return nil
	}

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	var webhookURL = fmt.Sprintf("%s?key=%s", ns.BaseURL, ns.WebhookKey)
	resp, err := ns.Client.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification returned status %d", resp.StatusCode)
	}

	slog.Info("notification sent", "msgtype", message.MsgType)
	return nil
}
