package config

import "time"

const AppName = "leditor"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "leditor.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Level and history defaults
const DefaultHistoryLimit = 40
const DefaultLevelWidth = 72
const DefaultLevelHeight = 43
const DefaultLayer = 0
const SystemClipboard = true
