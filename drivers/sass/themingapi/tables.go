package themingapi

import "github.com/emenda-labs/themeshift/drivers/sass/symbols"

// Components whose theme mixins all follow the `mat-<name>-{theme,color,typography}` pattern.
var componentThemeNames = []string{
	"option", "optgroup", "pseudo-checkbox", "autocomplete", "badge", "bottom-sheet", "button",
	"button-toggle", "card", "checkbox", "chips", "divider", "table", "datepicker", "dialog",
	"grid-list", "icon", "input", "list", "menu", "paginator", "progress-bar", "progress-spinner",
	"radio", "select", "sidenav", "slide-toggle", "slider", "stepper", "sort", "tabs", "toolbar",
	"tooltip", "snack-bar", "form-field", "tree",
}

// Palettes exposed as `$mat-<name>` in the legacy API.
var paletteNames = []string{
	"red", "pink", "indigo", "purple", "deep-purple", "blue", "light-blue", "cyan", "teal", "green",
	"light-green", "lime", "yellow", "amber", "orange", "deep-orange", "brown", "grey", "gray",
	"blue-grey", "blue-gray",
}

var materialMixins = buildMaterialMixins()

func buildMaterialMixins() symbols.Mapping {
	m := symbols.Mapping{
		"mat-core":                          "core",
		"mat-core-color":                    "core-color",
		"mat-core-theme":                    "core-theme",
		"angular-material-theme":            "all-component-themes",
		"angular-material-typography":       "all-component-typographies",
		"angular-material-color":            "all-component-colors",
		"mat-base-typography":               "typography-hierarchy",
		"mat-typography-level-to-styles":    "typography-level",
		"mat-elevation":                     "elevation",
		"mat-overridable-elevation":         "overridable-elevation",
		"mat-elevation-transition":          "elevation-transition",
		"mat-ripple":                        "ripple",
		"mat-ripple-color":                  "ripple-color",
		"mat-ripple-theme":                  "ripple-theme",
		"mat-strong-focus-indicators":       "strong-focus-indicators",
		"mat-strong-focus-indicators-color": "strong-focus-indicators-color",
		"mat-strong-focus-indicators-theme": "strong-focus-indicators-theme",
		"mat-font-shorthand":                "font-shorthand",
		// The package is `expansion` but its mixins used the `expansion-panel` prefix.
		"mat-expansion-panel-theme":      "expansion-theme",
		"mat-expansion-panel-color":      "expansion-color",
		"mat-expansion-panel-typography": "expansion-typography",
	}
	for _, name := range componentThemeNames {
		m["mat-"+name+"-theme"] = name + "-theme"
		m["mat-"+name+"-color"] = name + "-color"
		m["mat-"+name+"-typography"] = name + "-typography"
	}
	return m
}

var materialFunctions = symbols.Mapping{
	"mat-color":             "get-color-from-palette",
	"mat-contrast":          "get-contrast-color-from-palette",
	"mat-palette":           "define-palette",
	"mat-dark-theme":        "define-dark-theme",
	"mat-light-theme":       "define-light-theme",
	"mat-typography-level":  "define-typography-level",
	"mat-typography-config": "define-typography-config",
	"mat-font-size":         "font-size",
	"mat-line-height":       "line-height",
	"mat-font-weight":       "font-weight",
	"mat-letter-spacing":    "letter-spacing",
	"mat-font-family":       "font-family",
}

var materialVariables = buildMaterialVariables()

func buildMaterialVariables() symbols.Mapping {
	m := symbols.Mapping{
		"mat-light-theme-background": "light-theme-background-palette",
		"mat-dark-theme-background":  "dark-theme-background-palette",
		"mat-light-theme-foreground": "light-theme-foreground-palette",
		"mat-dark-theme-foreground":  "dark-theme-foreground-palette",
	}
	for _, name := range paletteNames {
		m["mat-"+name] = name + "-palette"
	}
	return m
}

var cdkMixins = symbols.Mapping{
	"cdk-overlay":                   "overlay",
	"cdk-a11y":                      "a11y-visually-hidden",
	"cdk-high-contrast":             "high-contrast",
	"cdk-text-field-autofill-color": "text-field-autofill-color",
	// Split into two mixins upstream; forwarded to the deprecated combined variant.
	"cdk-text-field": "text-field",
}

var cdkVariables = symbols.Mapping{
	"cdk-z-index-overlay-container":        "overlay-container-z-index",
	"cdk-z-index-overlay":                  "overlay-z-index",
	"cdk-z-index-overlay-backdrop":         "overlay-backdrop-z-index",
	"cdk-overlay-dark-backdrop-background": "overlay-backdrop-color",
}

// Material variables deleted without a replacement. References are inlined.
var removedMaterialVariables = symbols.Mapping{
	"mat-xsmall":                                          "max-width: 599px",
	"mat-small":                                           "max-width: 959px",
	"mat-toggle-padding":                                  "8px",
	"mat-toggle-size":                                     "20px",
	"mat-linear-out-slow-in-timing-function":              "cubic-bezier(0, 0, 0.2, 0.1)",
	"mat-fast-out-slow-in-timing-function":                "cubic-bezier(0.4, 0, 0.2, 1)",
	"mat-fast-out-linear-in-timing-function":              "cubic-bezier(0.4, 0, 1, 1)",
	"mat-elevation-transition-duration":                   "280ms",
	"mat-elevation-transition-timing-function":            "cubic-bezier(0.4, 0, 0.2, 1)",
	"mat-elevation-color":                                 "black",
	"mat-elevation-opacity":                               "1",
	"mat-elevation-prefix":                                "'mat-elevation-z'",
	"mat-ripple-color-opacity":                            "0.1",
	"mat-badge-font-size":                                 "12px",
	"mat-badge-font-weight":                               "600",
	"mat-badge-default-size":                              "22px",
	"mat-badge-small-size":                                "16px",
	"mat-badge-large-size":                                "28px",
	"mat-button-toggle-standard-height":                   "48px",
	"mat-button-toggle-standard-minimum-height":           "24px",
	"mat-button-toggle-standard-maximum-height":           "48px",
	"mat-chip-remove-font-size":                           "18px",
	"mat-datepicker-selected-today-box-shadow-width":      "1px",
	"mat-datepicker-selected-fade-amount":                 "0.6",
	"mat-datepicker-range-fade-amount":                    "0.2",
	"mat-datepicker-today-fade-amount":                    "0.2",
	"mat-calendar-body-font-size":                         "13px",
	"mat-calendar-weekday-table-font-size":                "11px",
	"mat-expansion-panel-header-collapsed-height":         "48px",
	"mat-expansion-panel-header-collapsed-minimum-height": "36px",
	"mat-expansion-panel-header-collapsed-maximum-height": "48px",
	"mat-expansion-panel-header-expanded-height":          "64px",
	"mat-expansion-panel-header-expanded-minimum-height":  "48px",
	"mat-expansion-panel-header-expanded-maximum-height":  "64px",
	"mat-expansion-panel-header-transition":               "225ms cubic-bezier(0.4, 0, 0.2, 1)",
	"mat-paginator-height":                                "56px",
	"mat-paginator-minimum-height":                        "40px",
	"mat-paginator-maximum-height":                        "56px",
	"mat-stepper-header-height":                           "72px",
	"mat-stepper-header-minimum-height":                   "42px",
	"mat-stepper-header-maximum-height":                   "72px",
	"mat-stepper-label-header-height":                     "24px",
	"mat-stepper-label-position-bottom-top-gap":           "16px",
	"mat-stepper-label-min-width":                         "50px",
	"mat-vertical-stepper-content-margin":                 "36px",
	"mat-stepper-side-gap":                                "24px",
	"mat-stepper-line-width":                              "1px",
	"mat-stepper-line-gap":                                "8px",
	"mat-step-sub-label-font-size":                        "12px",
	"mat-step-header-icon-size":                           "16px",
	"mat-toolbar-minimum-height":                          "44px",
	"mat-toolbar-height-desktop":                          "64px",
	"mat-toolbar-maximum-height-desktop":                  "64px",
	"mat-toolbar-minimum-height-desktop":                  "44px",
	"mat-toolbar-height-mobile":                           "56px",
	"mat-toolbar-maximum-height-mobile":                   "56px",
	"mat-toolbar-minimum-height-mobile":                   "44px",
	"mat-tooltip-target-height":                           "22px",
	"mat-tooltip-font-size":                               "10px",
	"mat-tooltip-vertical-padding":                        "6px",
	"mat-tooltip-handset-target-height":                   "30px",
	"mat-tooltip-handset-font-size":                       "14px",
	"mat-tooltip-handset-vertical-padding":                "8px",
	"mat-tree-node-height":                                "48px",
	"mat-tree-node-minimum-height":                        "24px",
	"mat-tree-node-maximum-height":                        "48px",
}

// Removed variables without the `mat-` prefix. These names are generic enough
// that they are only inlined when the file imported Material.
var unprefixedRemovedVariables = symbols.Mapping{
	"z-index-overlay-container":         "1000",
	"z-index-overlay":                   "1000",
	"z-index-overlay-backdrop":          "1000",
	"dark-backdrop-background":          "rgba(0, 0, 0, 0.32)",
	"swift-ease-out-duration":           "400ms",
	"swift-ease-out-timing-function":    "cubic-bezier(0.25, 0.8, 0.25, 1)",
	"swift-ease-out":                    "all 400ms cubic-bezier(0.25, 0.8, 0.25, 1)",
	"swift-ease-in-duration":            "300ms",
	"swift-ease-in-timing-function":     "cubic-bezier(0.55, 0, 0.55, 0.2)",
	"swift-ease-in":                     "all 300ms cubic-bezier(0.55, 0, 0.55, 0.2)",
	"swift-ease-in-out-duration":        "500ms",
	"swift-ease-in-out-timing-function": "cubic-bezier(0.35, 0, 0.25, 1)",
	"swift-ease-in-out":                 "all 500ms cubic-bezier(0.35, 0, 0.25, 1)",
	"swift-linear-duration":             "80ms",
	"swift-linear-timing-function":      "linear",
	"swift-linear":                      "all 80ms linear",
	"black-87-opacity":                  "rgba(black, 0.87)",
	"white-87-opacity":                  "rgba(white, 0.87)",
	"black-12-opacity":                  "rgba(black, 0.12)",
	"white-12-opacity":                  "rgba(white, 0.12)",
	"black-6-opacity":                   "rgba(black, 0.06)",
	"white-6-opacity":                   "rgba(white, 0.06)",
	"dark-primary-text":                 "rgba(black, 0.87)",
	"dark-secondary-text":               "rgba(black, 0.54)",
	"dark-disabled-text":                "rgba(black, 0.38)",
	"dark-dividers":                     "rgba(black, 0.12)",
	"dark-focused":                      "rgba(black, 0.12)",
	"light-primary-text":                "white",
	"light-secondary-text":              "rgba(white, 0.7)",
	"light-disabled-text":               "rgba(white, 0.5)",
	"light-dividers":                    "rgba(white, 0.12)",
	"light-focused":                     "rgba(white, 0.12)",
}

// MaterialSymbols returns a copy of the built-in Material rename tables.
func MaterialSymbols() symbols.Set {
	return symbols.Set{
		Mixins:    materialMixins.Clone(),
		Functions: materialFunctions.Clone(),
		Variables: materialVariables.Clone(),
	}
}

// CDKSymbols returns a copy of the built-in CDK rename tables. The CDK has no
// renamed functions.
func CDKSymbols() symbols.Set {
	return symbols.Set{
		Mixins:    cdkMixins.Clone(),
		Functions: symbols.Mapping{},
		Variables: cdkVariables.Clone(),
	}
}

// RemovedMaterialVariables returns a copy of the table of deleted Material variables.
func RemovedMaterialVariables() symbols.Mapping {
	return removedMaterialVariables.Clone()
}

// UnprefixedRemovedVariables returns a copy of the table of deleted variables
// without the `mat-` prefix.
func UnprefixedRemovedVariables() symbols.Mapping {
	return unprefixedRemovedVariables.Clone()
}
