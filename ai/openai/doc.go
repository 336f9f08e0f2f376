// Package openai implements the ai interfaces against OpenAI-compatible APIs.
//
// Embeddings use the /embeddings endpoint via langchaingo; entity extraction
// prompts a chat model in JSON mode and filters the response to the supported
// entity types. Both work against local servers (Ollama, LocalAI, vLLM) as
// well as the hosted OpenAI API.
package openai
