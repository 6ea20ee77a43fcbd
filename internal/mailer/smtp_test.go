package mailer

import (
	"strings"
	"testing"
)

func TestBuildSummaryHTML(t *testing.T) {
	body := BuildSummaryHTML("line one\nline two")

	for _, want := range []string{
		"Your AI-Generated Summary",
		"line one\nline two",
		"<!DOCTYPE html>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestBuildSummaryHTMLEscapes(t *testing.T) {
	body := BuildSummaryHTML(`<script>alert("x")</script>`)

	if strings.Contains(body, "<script>") {
		t.Error("Expected summary markup to be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("Expected escaped script tag, got %q", body)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("from@x.com", []string{"a@x.com", "b@x.com"}, "Subject Line", "<html>hi</html>")

	for _, want := range []string{
		"From: from@x.com\r\n",
		"To: a@x.com,b@x.com\r\n",
		"Subject: Subject Line\r\n",
		`Content-Type: text/html; charset="UTF-8"`,
		"\r\n\r\n<html>hi</html>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q", want)
		}
	}
}
