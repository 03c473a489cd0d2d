package app

import (
	"fmt"
	"strings"

	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EvaluationPlanEnvPrefix prefixes environment variables overriding plan fields,
// e.g. EVALUATION_K_VALUES=5,10.
const EvaluationPlanEnvPrefix = "EVALUATION_"

// EvaluationPlan configures an offline evaluation run.
type EvaluationPlan struct {
	KValues    []int  `koanf:"k_values" validate:"min=1,dive,gt=0"`
	Output     string `koanf:"output" validate:"required"`
	XLSXOutput string `koanf:"xlsx_output"`

	ABTest       bool    `koanf:"ab_test"`
	ABAlgorithmA string  `koanf:"ab_algorithm_a"`
	ABAlgorithmB string  `koanf:"ab_algorithm_b"`
	ABSplitRatio float64 `koanf:"ab_split_ratio" validate:"gte=0,lte=1"`

	Seed           uint64  `koanf:"seed"`
	TestSplitRatio float64 `koanf:"test_split_ratio" validate:"gt=0,lt=1"`

	// ValidateDataset runs the dataset validation helpers before evaluating.
	ValidateDataset bool `koanf:"validate"`
}

// DefaultEvaluationPlan returns the plan used when nothing is overridden.
func DefaultEvaluationPlan() EvaluationPlan {
	evaluation := DefaultEvaluationConfig()
	return EvaluationPlan{
		KValues:        []int{5, 10, 20},
		Output:         "evaluation_report.json",
		ABAlgorithmA:   string(domain.AlgorithmContent),
		ABAlgorithmB:   string(domain.AlgorithmHybrid),
		ABSplitRatio:   0.5,
		Seed:           evaluation.Seed,
		TestSplitRatio: evaluation.TestSplitRatio,
	}
}

// sliceKeys are plan keys that arrive as comma-separated strings from the environment or flags.
var sliceKeys = []string{"k_values"}

// LoadEvaluationPlan layers the defaults, the YAML file at path (if path is
// non-empty), EVALUATION_* environment variables and finally overrides, keyed
// by plan field name. The result is validated.
func LoadEvaluationPlan(path string, overrides map[string]any) (EvaluationPlan, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultEvaluationPlan(), "koanf"), nil); err != nil {
		return EvaluationPlan{}, fmt.Errorf("loading plan defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return EvaluationPlan{}, fmt.Errorf("loading plan file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EvaluationPlanEnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EvaluationPlanEnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return EvaluationPlan{}, fmt.Errorf("loading plan environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return EvaluationPlan{}, fmt.Errorf("applying plan override %s: %w", key, err)
		}
	}

	if err := splitSliceKeys(k); err != nil {
		return EvaluationPlan{}, err
	}

	var plan EvaluationPlan
	if err := k.Unmarshal("", &plan); err != nil {
		return EvaluationPlan{}, fmt.Errorf("unmarshaling plan: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return EvaluationPlan{}, err
	}

	return plan, nil
}

func splitSliceKeys(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		s, ok := k.Get(key).(string)
		if !ok {
			continue
		}

		var parts []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if err := k.Set(key, parts); err != nil {
			return fmt.Errorf("splitting %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks field ranges and that A/B algorithm names are known.
func (p EvaluationPlan) Validate() error {
	if err := validation.Struct(p); err != nil {
		return fmt.Errorf("invalid evaluation plan: %w", err)
	}

	if p.ABTest {
		if _, err := domain.ParseAlgorithm(p.ABAlgorithmA); err != nil {
			return fmt.Errorf("invalid evaluation plan ab_algorithm_a: %w", err)
		}
		if _, err := domain.ParseAlgorithm(p.ABAlgorithmB); err != nil {
			return fmt.Errorf("invalid evaluation plan ab_algorithm_b: %w", err)
		}
	}

	return nil
}

// EvaluationConfig returns the evaluator settings the plan selects.
func (p EvaluationPlan) EvaluationConfig() command.EvaluationConfig {
	return command.EvaluationConfig{
		TestSplitRatio: p.TestSplitRatio,
		Seed:           p.Seed,
	}
}

// EvaluationRequest returns the comprehensive evaluation request the plan describes.
func (p EvaluationPlan) EvaluationRequest() command.RunComprehensiveEvaluationRequest {
	return command.RunComprehensiveEvaluationRequest{
		KValues:   p.KValues,
		RunABTest: p.ABTest,
		ABTest: command.ABTestPlan{
			AlgorithmA: p.ABAlgorithmA,
			AlgorithmB: p.ABAlgorithmB,
			SplitRatio: p.ABSplitRatio,
			Seed:       p.Seed,
		},
	}
}
