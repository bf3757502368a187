package telegram

import (
	"context"
)

// CallbackAnswer are the optional parameters of AnswerCallbackQuery.
type CallbackAnswer struct {
	Text      string
	ShowAlert bool
	URL       string
	CacheTime int
}

// InlineAnswerOptions are the optional parameters of AnswerInlineQuery.
type InlineAnswerOptions struct {
	CacheTime         int
	IsPersonal        bool
	NextOffset        string
	SwitchPMText      string
	SwitchPMParameter string
}

// AnswerCallbackQuery answers a callback query sent from an inline keyboard.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string, answer *CallbackAnswer) error {
	if err := requireNonBlank("callback_query_id", callbackQueryID); err != nil {
		return err
	}
	if answer == nil {
		answer = &CallbackAnswer{}
	}

	fields := NewFields().
		Add("callback_query_id", callbackQueryID).
		AddString("text", answer.Text).
		AddBool("show_alert", answer.ShowAlert).
		AddString("url", answer.URL).
		AddIntIf(answer.CacheTime > 0, "cache_time", int64(answer.CacheTime))

	var ok bool
	return c.post(ctx, "answerCallbackQuery", fields, nil, &ok)
}

// AnswerInlineQuery sends up to 50 results for an inline query.
func (c *Client) AnswerInlineQuery(ctx context.Context, inlineQueryID string, results []InlineResult, opts *InlineAnswerOptions) error {
	if opts == nil {
		opts = &InlineAnswerOptions{}
	}
	if err := firstErr(
		requireNonBlank("inline_query_id", inlineQueryID),
		requireMaxBytes("switch_pm_parameter", opts.SwitchPMParameter, maxSwitchPMParamBytes),
	); err != nil {
		return err
	}
	if len(results) > maxInlineResults {
		return &ValidationError{Field: "results", Reason: "at most 50 results are allowed"}
	}
	if opts.SwitchPMParameter != "" && opts.SwitchPMText == "" {
		return &ValidationError{Field: "switch_pm_text", Reason: "required with switch_pm_parameter"}
	}
	for _, r := range results {
		if err := r.validate(); err != nil {
			return err
		}
	}
	if results == nil {
		results = []InlineResult{}
	}

	fields := NewFields().Add("inline_query_id", inlineQueryID)
	if err := fields.AddJSON("results", results); err != nil {
		return err
	}
	fields.
		AddIntIf(opts.CacheTime > 0, "cache_time", int64(opts.CacheTime)).
		AddBool("is_personal", opts.IsPersonal).
		AddString("next_offset", opts.NextOffset).
		AddString("switch_pm_text", opts.SwitchPMText).
		AddString("switch_pm_parameter", opts.SwitchPMParameter)

	var ok bool
	return c.post(ctx, "answerInlineQuery", fields, nil, &ok)
}
