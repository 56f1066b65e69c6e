package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
)

// manPagePattern matches the pages written by gen-docs.
const manPagePattern = "synapse*.1"

// PurgeDataUseCase handles discovering and purging synapse data.
type PurgeDataUseCase struct {
	fs  port.FileSystem
	xdg port.XDGPaths
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg}
}

// GetPurgeTargets returns all available purge targets with their current state.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, err
	}
	scriptsDir, err := uc.xdg.ScriptsDir()
	if err != nil {
		return nil, err
	}
	dataDir, err := uc.xdg.DataDir()
	if err != nil {
		return nil, err
	}
	stateDir, err := uc.xdg.StateDir()
	if err != nil {
		return nil, err
	}
	manDir, err := uc.xdg.ManDir()
	if err != nil {
		return nil, err
	}
	manPages, err := uc.fs.Glob(ctx, filepath.Join(manDir, manPagePattern))
	if err != nil {
		return nil, fmt.Errorf("find man pages: %w", err)
	}

	baseTargets := []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Paths: []string{configDir}, Description: "settings"},
		{Type: entity.PurgeTargetScripts, Paths: []string{scriptsDir}, Description: "generated action scripts"},
		{Type: entity.PurgeTargetData, Paths: []string{dataDir}, Description: "bindings, actions and activity log"},
		{Type: entity.PurgeTargetState, Paths: []string{stateDir}, Description: "log files"},
		{Type: entity.PurgeTargetManPages, Paths: manPages, Description: "man pages"},
	}

	targets := make([]entity.PurgeTarget, 0, len(baseTargets))
	for _, t := range baseTargets {
		for _, p := range t.Paths {
			exists, err := uc.fs.Exists(ctx, p)
			if err != nil {
				return nil, err
			}
			if !exists {
				continue
			}
			t.Exists = true
			size, err := uc.fs.GetSize(ctx, p)
			if err != nil {
				return nil, err
			}
			t.Size += size
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t, Success: true}
		for _, p := range t.Paths {
			if err := uc.fs.RemoveAll(ctx, p); err != nil {
				res.Success = false
				res.Error = err
				log.Warn().Err(err).Str("path", p).Str("type", string(t.Type)).Msg("purge target failed")
				break
			}
		}

		if res.Success {
			out.SuccessCount++
			out.TotalSize += t.Size
			log.Info().Strs("paths", t.Paths).Str("type", string(t.Type)).Msg("purge target removed")
		} else {
			out.FailureCount++
		}
		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges all existing targets.
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	return uc.Execute(ctx, PurgeInput{TargetTypes: entity.AllPurgeTargetTypes()})
}
