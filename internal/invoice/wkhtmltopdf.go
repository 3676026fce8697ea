package invoice

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os/exec"
	"strings"
)

// WkhtmltopdfEngine pipes the invoice through an external wkhtmltopdf
// executable. Path may be a bare name resolved via PATH.
type WkhtmltopdfEngine struct {
	Path string
}

func (e WkhtmltopdfEngine) Render(ctx context.Context, text string) ([]byte, error) {
	bin, err := exec.LookPath(e.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, bin, "--quiet", "--encoding", "utf-8", "-", "-")
	cmd.Stdin = strings.NewReader(htmlDocument(text))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("wkhtmltopdf: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func htmlDocument(text string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"></head><body><pre>` +
		html.EscapeString(text) +
		`</pre></body></html>`
}
