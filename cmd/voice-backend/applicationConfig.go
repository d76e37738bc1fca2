package main

type applicationConfig struct {
	Host           string `config_default:"localhost" config_description:"Server host interface"`
	Port           int    `config_default:"8080" config_description:"Server port"`
	SimulatedDelay int    `config_default:"0" config_description:"Simulated delay for converse responses in milliseconds"`

	ModelName        string `config_default:"openai:gpt-4o" config_description:"Chat model as provider:model"`
	SystemPrompt     string `config_default:"" config_description:"System prompt override for the assistant"`
	OpenAIAPIKey     string `config_default:"" config_description:"OpenAI API key"`
	OpenAIBaseURL    string `config_default:"" config_description:"OpenAI base URL override"`
	AnthropicAPIKey  string `config_default:"" config_description:"Anthropic API key"`
	AnthropicBaseURL string `config_default:"" config_description:"Anthropic base URL override"`
	OllamaBaseURL    string `config_default:"" config_description:"Ollama base URL override"`

	TTSProvider  string `config_default:"openai" config_description:"Speech synthesis provider (openai or gemini)"`
	TTSVoice     string `config_default:"" config_description:"Speech synthesis voice override"`
	GoogleAPIKey string `config_default:"" config_description:"Google API key for Gemini speech synthesis"`

	DataverseURL          string `config_default:"" config_description:"Dataverse environment URL"`
	DataverseTenantID     string `config_default:"" config_description:"Entra tenant ID for Dataverse authentication"`
	DataverseClientID     string `config_default:"" config_description:"Client ID for Dataverse authentication"`
	DataverseClientSecret string `config_default:"" config_description:"Client secret for Dataverse authentication"`
}
