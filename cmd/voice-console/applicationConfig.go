package main

type applicationConfig struct {
	BackendURL string `config_default:"http://localhost:8080/api/converse" config_description:"Converse endpoint of the voice backend"`
	WindowSize int    `config_default:"6" config_description:"Number of recent turns submitted with each request"`
	AudioDir   string `config_default:"" config_description:"Directory for spoken replies; replies are discarded when empty"`
}
