package main

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	replyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	toolStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	approvalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
)
