// Package model defines the provider-agnostic abstraction for language
// models inside agentloop.
//
// Core goals:
//   - Unify synchronous and streaming generation behind a single interface
//   - Keep the request shape minimal: history + tool descriptions
//   - Facilitate lightweight test providers (EchoProvider, ScriptedProvider)
//
// Providers (e.g. OpenAI, Anthropic) implement the Provider interface from
// this package so the engine remains decoupled from vendor SDKs.
package model
