package prompts

import (
	"context"
	"fmt"
	"strings"
)

// Compose builds a stage prompt by combining tunable instructions, the
// immutable output specification, and any stage-specific sections. Sections
// are appended in order, separated by blank lines.
func Compose(
	ctx context.Context,
	ps System,
	stage Stage,
	sections ...string,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	for _, section := range sections {
		if section == "" {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(section)
	}

	return sb.String(), nil
}
