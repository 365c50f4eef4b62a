package config

// InferenceConfig carries the free-form keyword mappings handed to the UNet
// and the noise scheduler by the inference pipeline. Instances are immutable
// after construction.
type InferenceConfig struct {
	// UNetAdditionalKwargs is passed through to the UNet constructor.
	UNetAdditionalKwargs map[string]any `json:"unet_additional_kwargs"`

	// NoiseSchedulerKwargs is passed through to the noise scheduler
	// constructor.
	NoiseSchedulerKwargs map[string]any `json:"noise_scheduler_kwargs"`
}

// NewInferenceConfig constructs a validated InferenceConfig from init
// arguments. When the reserved "json_config_path" init key is absent, the
// default inference config path under the application config directory is
// used (see [DefaultInferencePath]).
func NewInferenceConfig(init map[string]any) (*InferenceConfig, error) {
	values, err := resolve("InferenceConfig", init, []string{DefaultInferencePath()})
	if err != nil {
		return nil, err
	}

	if err := requireFields("InferenceConfig", values, "unet_additional_kwargs", "noise_scheduler_kwargs"); err != nil {
		return nil, err
	}

	cfg := new(InferenceConfig)
	if err := decode(values, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
