// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	messageSetupOnce sync.Once
	messageParser    goldmark.Markdown
	messageStyles    *lipgloss.Renderer
)

// messageSetup builds the markdown parser and the style renderer once.
// The preview draws inside the alt screen, where color support is the
// program's decision rather than something to sniff from stdout, so
// the renderer forces ANSI256. SetColorProfile is required because
// lipgloss re-detects from the environment otherwise.
func messageSetup() {
	messageSetupOnce.Do(func() {
		messageParser = goldmark.New(goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		))
		messageStyles = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
		messageStyles.SetColorProfile(termenv.ANSI256)
	})
}

// renderMessageMarkdown renders a chat message's markdown as styled
// terminal text wrapped to width. Chat markdown is a small dialect:
// emphasis, strikethrough, inline and fenced code, quotes, lists, and
// links. Two deliberate departures from document rendering: every
// newline in the source is a real line break, because message authors
// separate lines on purpose, and headings render as bold lines rather
// than sections.
func renderMessageMarkdown(input string, theme Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	messageSetup()

	source := []byte(input)
	document := messageParser.Parser().Parse(text.NewReader(source))

	renderer := &messageRenderer{source: source, theme: theme, width: width}
	ast.Walk(document, renderer.walk)
	return renderer.output.String()
}

// messageRenderer walks the goldmark AST directly, collecting inline
// fragments into a buffer and flushing them as wrapped blocks when
// the containing block node closes. Inline styles are tracked as
// depth counters so nesting unwinds without state flags.
type messageRenderer struct {
	source []byte
	theme  Theme
	width  int

	output strings.Builder
	inline strings.Builder

	// Prefix stack for nested quotes and list indents. bullet, when
	// set, replaces the prefix on the next block's first line.
	prefixes    []string
	prefixWidth int
	bullet      string

	boldDepth    int
	italicDepth  int
	strikeDepth  int
	codeDepth    int
	linkDepth    int
	headingDepth int

	lists []messageList
}

type messageList struct {
	ordered bool
	counter int
	tight   bool
}

func (renderer *messageRenderer) style() lipgloss.Style {
	return messageStyles.NewStyle()
}

// styledText renders a text fragment with whatever inline styles are
// currently open. Code and link coloring win over the base text color.
func (renderer *messageRenderer) styledText(content string) string {
	style := renderer.style().Foreground(renderer.theme.NormalText)
	switch {
	case renderer.codeDepth > 0:
		style = renderer.style().Foreground(renderer.theme.CodeForeground)
	case renderer.linkDepth > 0:
		style = renderer.style().Foreground(renderer.theme.LinkForeground).Underline(true)
	}
	if renderer.boldDepth > 0 || renderer.headingDepth > 0 {
		style = style.Bold(true)
	}
	if renderer.italicDepth > 0 {
		style = style.Italic(true)
	}
	if renderer.strikeDepth > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (renderer *messageRenderer) prefix() string {
	return strings.Join(renderer.prefixes, "")
}

func (renderer *messageRenderer) pushPrefix(text string) {
	renderer.prefixes = append(renderer.prefixes, text)
	renderer.prefixWidth += lipgloss.Width(text)
}

func (renderer *messageRenderer) popPrefix() {
	if len(renderer.prefixes) == 0 {
		return
	}
	last := renderer.prefixes[len(renderer.prefixes)-1]
	renderer.prefixes = renderer.prefixes[:len(renderer.prefixes)-1]
	renderer.prefixWidth -= lipgloss.Width(last)
}

// contentWidth is the wrap width after prefixes, clamped so deeply
// nested quotes cannot wrap into nothing.
func (renderer *messageRenderer) contentWidth() int {
	width := renderer.width - renderer.prefixWidth
	if width < 10 {
		width = 10
	}
	return width
}

func (renderer *messageRenderer) tightList() bool {
	if len(renderer.lists) == 0 {
		return false
	}
	return renderer.lists[len(renderer.lists)-1].tight
}

// writeBlock emits one finished block: separates it from the previous
// block (packed inside tight lists, a blank line otherwise) and
// applies the line prefixes, with the pending bullet consumed by the
// first line.
func (renderer *messageRenderer) writeBlock(content string) {
	if content == "" {
		return
	}
	if renderer.output.Len() > 0 {
		if renderer.tightList() {
			renderer.output.WriteString("\n")
		} else {
			renderer.output.WriteString("\n\n")
		}
	}
	for index, line := range strings.Split(content, "\n") {
		if index > 0 {
			renderer.output.WriteString("\n")
		}
		if index == 0 && renderer.bullet != "" {
			renderer.output.WriteString(renderer.bullet)
			renderer.bullet = ""
		} else {
			renderer.output.WriteString(renderer.prefix())
		}
		renderer.output.WriteString(line)
	}
}

// flushInline wraps the accumulated inline content and emits it as a
// block.
func (renderer *messageRenderer) flushInline() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}
	renderer.writeBlock(ansi.Wrap(content, renderer.contentWidth(), " ,.;-+|"))
}

// writeCodeBlock emits a code block, syntax-highlighted when the
// fence names a language Chroma knows.
func (renderer *messageRenderer) writeCodeBlock(code, language string) {
	code = strings.TrimRight(code, "\n")
	if code == "" {
		return
	}

	var rendered string
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			rendered = strings.TrimRight(buffer.String(), "\n")
		}
	}
	if rendered == "" {
		rendered = renderer.style().Foreground(renderer.theme.CodeForeground).Render(code)
	}
	renderer.writeBlock(rendered)
}

func (renderer *messageRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {

	case ast.KindDocument:

	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushInline()
		}

	case ast.KindHeading:
		// Chat clients draw headings as bold text, not sections.
		if entering {
			renderer.inline.Reset()
			renderer.headingDepth++
		} else {
			renderer.headingDepth--
			renderer.flushInline()
		}

	case ast.KindFencedCodeBlock:
		if entering {
			block := node.(*ast.FencedCodeBlock)
			language := string(block.Language(renderer.source))
			renderer.writeCodeBlock(blockText(block.Lines(), renderer.source), language)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			block := node.(*ast.CodeBlock)
			renderer.writeCodeBlock(blockText(block.Lines(), renderer.source), "")
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			bar := renderer.style().Foreground(renderer.theme.BorderColor).Render("│ ")
			renderer.pushPrefix(bar)
		} else {
			renderer.popPrefix()
		}

	case ast.KindList:
		list := node.(*ast.List)
		if entering {
			start := 0
			if list.IsOrdered() {
				start = list.Start
			}
			renderer.lists = append(renderer.lists, messageList{
				ordered: list.IsOrdered(),
				counter: start,
				tight:   list.IsTight,
			})
		} else if len(renderer.lists) > 0 {
			renderer.lists = renderer.lists[:len(renderer.lists)-1]
		}

	case ast.KindListItem:
		if entering {
			renderer.enterItem()
		} else {
			renderer.popPrefix()
		}

	case ast.KindThematicBreak:
		if entering {
			rule := strings.Repeat("─", renderer.contentWidth())
			renderer.writeBlock(renderer.style().Foreground(renderer.theme.BorderColor).Render(rule))
		}

	case ast.KindText:
		if entering {
			renderer.handleText(node.(*ast.Text))
		}

	case ast.KindString:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		emphasis := node.(*ast.Emphasis)
		delta := 1
		if !entering {
			delta = -1
		}
		if emphasis.Level >= 2 {
			renderer.boldDepth += delta
		} else {
			renderer.italicDepth += delta
		}

	case ast.KindCodeSpan:
		if entering {
			renderer.codeDepth++
		} else {
			renderer.codeDepth--
		}

	case ast.KindLink:
		link := node.(*ast.Link)
		if entering {
			renderer.linkDepth++
		} else {
			renderer.linkDepth--
			if url := string(link.Destination); url != "" {
				faint := renderer.style().Foreground(renderer.theme.FaintText)
				renderer.inline.WriteString(" " + faint.Render("("+url+")"))
			}
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(renderer.source))
			linkStyle := renderer.style().
				Foreground(renderer.theme.LinkForeground).
				Underline(true)
			renderer.inline.WriteString(linkStyle.Render(url))
		}

	case ast.KindImage:
		// Attachments travel out of band; an inline image reference
		// is only useful as its URL.
		if entering {
			image := node.(*ast.Image)
			faint := renderer.style().Foreground(renderer.theme.FaintText)
			renderer.inline.WriteString(faint.Render("(" + string(image.Destination) + ")"))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindRawHTML:
		// Chat has no HTML. Whatever looked like a tag is literal
		// text the author typed.
		if entering {
			raw := node.(*ast.RawHTML)
			var literal strings.Builder
			for index := 0; index < raw.Segments.Len(); index++ {
				segment := raw.Segments.At(index)
				literal.Write(segment.Value(renderer.source))
			}
			renderer.inline.WriteString(renderer.styledText(literal.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindHTMLBlock:
		if entering {
			block := node.(*ast.HTMLBlock)
			literal := strings.TrimRight(blockText(block.Lines(), renderer.source), "\n")
			renderer.writeBlock(renderer.styledText(literal))
			return ast.WalkSkipChildren, nil
		}

	case extast.KindStrikethrough:
		if entering {
			renderer.strikeDepth++
		} else {
			renderer.strikeDepth--
		}
	}

	return ast.WalkContinue, nil
}

func (renderer *messageRenderer) enterItem() {
	if len(renderer.lists) == 0 {
		return
	}
	top := &renderer.lists[len(renderer.lists)-1]

	var bullet string
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	} else {
		bullet = "• "
	}

	// The bullet replaces the whole prefix on the item's first line;
	// continuation lines indent to the same column.
	renderer.bullet = renderer.prefix() +
		renderer.style().Foreground(renderer.theme.FaintText).Render(bullet)
	renderer.pushPrefix(strings.Repeat(" ", lipgloss.Width(bullet)))
}

func (renderer *messageRenderer) handleText(node *ast.Text) {
	value := string(node.Segment.Value(renderer.source))
	renderer.inline.WriteString(renderer.styledText(value))

	// Every newline in a message is a real line break. Reflowing soft
	// breaks into spaces would merge lines the author separated.
	if node.SoftLineBreak() || node.HardLineBreak() {
		renderer.inline.WriteString("\n")
	}
}

func blockText(lines *text.Segments, source []byte) string {
	var content strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		content.Write(segment.Value(source))
	}
	return content.String()
}
