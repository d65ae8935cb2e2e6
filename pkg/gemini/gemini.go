package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shushant0603/Smart-College-companion-Backend/config"
)

// ErrEmptyResponse 生成接口返回了空候选内容
var ErrEmptyResponse = errors.New("生成结果为空")

// Client Google Generative Language REST API 客户端
// 仅封装本服务用到的 generateContent 调用
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// New 创建 Gemini 客户端
func New(cfg *config.AIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: timeout},
	}
}

// Summarize 生成不超过 150 词的内容摘要
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	prompt := "请用不超过 150 词总结以下学习笔记的内容，直接输出摘要正文：\n\n" + content
	return c.generate(ctx, prompt)
}

// ExtractKeyPoints 从内容中提取 3-5 条要点
func (c *Client) ExtractKeyPoints(ctx context.Context, content string) (string, error) {
	prompt := "请从以下学习笔记中提取 3-5 条关键要点，每条一行，直接输出要点列表：\n\n" + content
	return c.generate(ctx, prompt)
}

// ── generateContent 请求/响应结构 ──

type part struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []promptContent{{Parts: []part{{Text: prompt}}}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("生成服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("生成服务错误 %s: %s", resp.Status, string(respBytes))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("解析生成结果失败: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
