package clangformat

import (
	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// choice is a small constructor helper for the common case of a ChoiceRule
// over string enum members.
func choice(members ...string) mutation.Rule {
	options := make([]config.Value, len(members))
	for i, m := range members {
		options[i] = config.String(m)
	}
	return mutation.ChoiceRule{Options: options}
}

// boolChoice is a ChoiceRule over the two boolean values, used for keys we
// want to record explicitly in the schema (as opposed to relying on the
// engine's unknown-key bool-toggle fallback).
func boolChoice() mutation.Rule {
	return mutation.ChoiceRule{Options: []config.Value{config.Bool(true), config.Bool(false)}}
}

// buildSchema returns the static per-key mutation schema for clang-format's
// documented style options: every top-level key in clang-format's own
// ClangFormatStyleOptions documentation (across versions, including
// several struct-valued options — BraceWrapping, SpaceBeforeParensOptions,
// the AlignConsecutive* structs, IntegerLiteralSeparator,
// SpacesInLineCommentPrefix — whose leaf fields are flattened into this
// same map, since the mutation engine looks keys up by name regardless of
// nesting depth) is represented here, tagged with the rule kind its
// documented value type implies. A handful of keys genuinely have no
// sensible mutation (opaque lists of macro names, regexes, the style's own
// identity) and are recorded as IdentityRule rather than omitted, so the
// schema's key set can be read as the full option surface, not just the
// mutable part of it.
func buildSchema() mutation.Schema {
	return mutation.Schema{
		// Bounded integers perturbed by Gaussian step, clamped at each rule's Min.
		"ColumnLimit":                       mutation.DeltaGaussRule{Sigma: 20, Min: 0},
		"IndentWidth":                       mutation.DeltaGaussRule{Sigma: 2, Min: 1},
		"TabWidth":                          mutation.DeltaGaussRule{Sigma: 2, Min: 1},
		"ContinuationIndentWidth":           mutation.DeltaGaussRule{Sigma: 2, Min: 0},
		"ConstructorInitializerIndentWidth": mutation.DeltaGaussRule{Sigma: 2, Min: 0},
		"ObjCBlockIndentWidth":              mutation.DeltaGaussRule{Sigma: 2, Min: 0},
		"AccessModifierOffset":              mutation.DeltaGaussRule{Sigma: 2, Min: -8},

		// Uniformly-drawn integers over a documented, wide numeric range.
		"PenaltyBreakAssignment":              mutation.RangeRule{Lo: 0, Hi: 200},
		"PenaltyBreakBeforeFirstCallParameter": mutation.RangeRule{Lo: 0, Hi: 200},
		"PenaltyBreakComment":                  mutation.RangeRule{Lo: 0, Hi: 500},
		"PenaltyBreakString":                   mutation.RangeRule{Lo: 0, Hi: 1000},
		"PenaltyExcessCharacter":               mutation.RangeRule{Lo: 0, Hi: 1000000},
		"PenaltyReturnTypeOnItsOwnLine":        mutation.RangeRule{Lo: 0, Hi: 200},
		"PenaltyBreakOpenParenthesis":          mutation.RangeRule{Lo: 0, Hi: 500},
		"PenaltyBreakScopeResolution":          mutation.RangeRule{Lo: 0, Hi: 500},
		"PenaltyBreakTemplateDeclaration":      mutation.RangeRule{Lo: 0, Hi: 500},
		"PenaltyIndentedWhitespace":            mutation.RangeRule{Lo: 0, Hi: 100},
		"MaxEmptyLinesToKeep":                  mutation.RangeRule{Lo: 0, Hi: 10},
		"SpacesBeforeTrailingComments":         mutation.RangeRule{Lo: 0, Hi: 4},
		"ShortNamespaceLines":                  mutation.RangeRule{Lo: 0, Hi: 10},
		"PPIndentWidth":                        mutation.RangeRule{Lo: -1, Hi: 8},
		"BracedInitializerIndentWidth":         mutation.RangeRule{Lo: -1, Hi: 8},
		// SpacesInLineCommentPrefix's two leaf fields.
		"Minimum": mutation.RangeRule{Lo: 0, Hi: 10},
		"Maximum": mutation.RangeRule{Lo: -1, Hi: 100},
		// IntegerLiteralSeparator's six leaf fields (-1 disables, 0 means
		// "no separator", N inserts one every N digits).
		"Binary":           mutation.RangeRule{Lo: -1, Hi: 8},
		"BinaryMinDigits":  mutation.RangeRule{Lo: 0, Hi: 8},
		"Decimal":          mutation.RangeRule{Lo: -1, Hi: 8},
		"DecimalMinDigits": mutation.RangeRule{Lo: 0, Hi: 8},
		"Hex":              mutation.RangeRule{Lo: -1, Hi: 8},
		"HexMinDigits":     mutation.RangeRule{Lo: 0, Hi: 8},

		// Enumerations.
		"BasedOnStyle":                        choice("LLVM", "Google", "Chromium", "Mozilla", "WebKit", "Microsoft", "GNU"),
		"BreakBeforeBraces":                   choice("Attach", "Linux", "Mozilla", "Stroustrup", "Allman", "Whitesmiths", "GNU", "WebKit", "Custom"),
		"AlignAfterOpenBracket":               choice("Align", "DontAlign", "AlwaysBreak", "BlockIndent"),
		"AlignEscapedNewlines":                choice("DontAlign", "Left", "Right"),
		"AlignOperands":                       choice("DontAlign", "Align", "AlignAfterOperator"),
		"AllowShortFunctionsOnASingleLine":    choice("None", "Empty", "Inline", "All"),
		"AllowShortIfStatementsOnASingleLine": choice("Never", "WithoutElse", "OnlyFirstIf", "AllIfsAndElse"),
		"AllowShortBlocksOnASingleLine":       choice("Never", "Empty", "Always"),
		"AllowShortLambdasOnASingleLine":      choice("None", "Empty", "Inline", "All"),
		"AlwaysBreakAfterReturnType":          choice("None", "All", "TopLevel", "AllDefinitions", "TopLevelDefinitions"),
		"AlwaysBreakTemplateDeclarations":     choice("No", "MultiLine", "Yes"),
		"BreakBeforeBinaryOperators":          choice("None", "NonAssignment", "All"),
		"BreakConstructorInitializers":        choice("BeforeColon", "BeforeComma", "AfterColon"),
		"BreakInheritanceList":                choice("BeforeColon", "BeforeComma", "AfterColon", "AfterComma"),
		"BreakBeforeConceptDeclarations":      choice("Never", "Allowed", "Always"),
		"BreakBeforeInlineASMColon":           choice("Never", "OnlyMultiline", "Always"),
		"BreakAfterAttributes":                choice("Always", "Leave", "Never"),
		"BreakAfterReturnType":                choice("None", "All", "TopLevel", "AllDefinitions", "TopLevelDefinitions", "Automatic", "ExceptShortType"),
		"BreakTemplateDeclarations":           choice("No", "MultiLine", "Yes", "Leave"),
		"AllowBreakBeforeNoexceptSpecifier":   choice("Never", "OnlyWithParen", "Always"),
		"EmptyLineAfterAccessModifier":        choice("Never", "Leave", "Always"),
		"EmptyLineBeforeAccessModifier":       choice("Never", "Leave", "LogicalBlock", "Always"),
		"IncludeBlocks":                       choice("Preserve", "Merge", "Regroup"),
		"IndentExternBlock":                   choice("AfterExternBlock", "Indent", "NoIndent"),
		"IndentPPDirectives":                  choice("None", "AfterHash", "BeforeHash"),
		"InsertTrailingCommas":                choice("None", "Wrapped"),
		"JavaScriptQuotes":                    choice("Leave", "Single", "Double"),
		"LambdaBodyIndentation":               choice("Signature", "OuterScope"),
		"LineEnding":                          choice("LF", "CRLF", "DeriveLF", "DeriveCRLF"),
		"NamespaceIndentation":                choice("None", "Inner", "All"),
		"ObjCBinPackProtocolList":             choice("Auto", "Always", "Never"),
		"PackConstructorInitializers":         choice("Never", "BinPack", "CurrentLine", "NextLine", "NextLineOnly"),
		"PointerAlignment":                    choice("Left", "Right", "Middle"),
		"QualifierAlignment":                  choice("Leave", "Left", "Right", "Custom"),
		"ReferenceAlignment":                  choice("Pointer", "Left", "Right", "Middle"),
		"RemoveParentheses":                   choice("Leave", "MultipleParentheses", "ReturnStatement"),
		"RequiresClausePosition":              choice("OwnLine", "WithPreceding", "WithFollowing", "SingleLine"),
		"RequiresExpressionIndentation":       choice("OuterScope", "Keyword"),
		"SeparateDefinitionBlocks":            choice("Leave", "Always", "Never"),
		"SortIncludes":                        choice("Never", "CaseSensitive", "CaseInsensitive"),
		"SortJavaStaticImport":                choice("Before", "After"),
		"SpaceAroundPointerQualifiers":        choice("Default", "Before", "After", "Both"),
		"SpaceBeforeParens":                   choice("Never", "ControlStatements", "ControlStatementsExceptControlMacros", "NonEmptyParentheses", "Always"),
		"SpacesInAngles":                      choice("Never", "Always", "Leave"),
		"Standard":                            choice("c++03", "c++11", "c++14", "c++17", "c++20", "Latest", "Auto"),
		"UseTab":                              choice("Never", "ForIndentation", "ForContinuationAndIndentation", "AlignWithSpaces", "Always"),
		"AlignArrayOfStructures":              choice("None", "Left", "Right"),
		"BitFieldColonSpacing":                choice("Both", "None", "Before", "After"),
		"WrapNamespaceBodyWithEmptyLines":     choice("Never", "Always", "Leave"),
		// BraceWrapping.AfterControlStatement.
		"AfterControlStatement": choice("Never", "MultiLine", "Always"),

		// Booleans recorded explicitly (equivalent to the bool-toggle
		// fallback, but named here so a reader can see the full surface the
		// search is allowed to touch without consulting the fallback path).
		"BinPackLongBracedList":                             boolChoice(),
		"AllowShortLoopsOnASingleLine":                       boolChoice(),
		"BinPackArguments":                                  boolChoice(),
		"BinPackParameters":                                 boolChoice(),
		"BreakBeforeTernaryOperators":                        boolChoice(),
		"BreakStringLiterals":                                boolChoice(),
		"CompactNamespaces":                                  boolChoice(),
		"Cpp11BracedListStyle":                               boolChoice(),
		"DerivePointerAlignment":                             boolChoice(),
		"FixNamespaceComments":                               boolChoice(),
		"IndentCaseLabels":                                   boolChoice(),
		"IndentCaseBlocks":                                   boolChoice(),
		"IndentGotoLabels":                                   boolChoice(),
		"IndentWrappedFunctionNames":                         boolChoice(),
		"KeepEmptyLinesAtTheStartOfBlocks":                   boolChoice(),
		"ReflowComments":                                     boolChoice(),
		"SortUsingDeclarations":                              boolChoice(),
		"SpaceAfterCStyleCast":                                boolChoice(),
		"SpaceAfterLogicalNot":                                boolChoice(),
		"SpaceAfterTemplateKeyword":                          boolChoice(),
		"SpaceBeforeAssignmentOperators":                     boolChoice(),
		"SpaceBeforeCpp11BracedList":                         boolChoice(),
		"SpaceBeforeCtorInitializerColon":                    boolChoice(),
		"SpaceBeforeInheritanceColon":                        boolChoice(),
		"SpaceBeforeRangeBasedForLoopColon":                  boolChoice(),
		"SpaceInEmptyBlock":                                  boolChoice(),
		"SpaceInEmptyParentheses":                            boolChoice(),
		"SpacesInCStyleCastParentheses":                      boolChoice(),
		"SpacesInConditionalStatement":                       boolChoice(),
		"SpacesInContainerLiterals":                          boolChoice(),
		"SpacesInParentheses":                                boolChoice(),
		"SpacesInSquareBrackets":                             boolChoice(),
		"DisableFormat":                                      boolChoice(),
		"AllowAllArgumentsOnNextLine":                        boolChoice(),
		"AllowAllConstructorInitializersOnNextLine":          boolChoice(),
		"AllowAllParametersOfDeclarationOnNextLine":          boolChoice(),
		"AllowShortCaseLabelsOnASingleLine":                  boolChoice(),
		"AllowShortCaseExpressionOnASingleLine":              boolChoice(),
		"AllowShortEnumsOnASingleLine":                       boolChoice(),
		"AllowShortNamespacesOnASingleLine":                  boolChoice(),
		"AlignConsecutiveAssignments":                        boolChoice(),
		"AlignConsecutiveBitFields":                          boolChoice(),
		"AlignConsecutiveDeclarations":                        boolChoice(),
		"AlignConsecutiveMacros":                             boolChoice(),
		"AlignConsecutiveShortCaseStatements":                boolChoice(),
		"AlignConsecutiveTableGenBreakingDAGArgColons":       boolChoice(),
		"AlignConsecutiveTableGenCondOperatorColons":         boolChoice(),
		"AlignConsecutiveTableGenDefinitions":                boolChoice(),
		"AlignTrailingComments":                              boolChoice(),
		"BreakAfterJavaFieldAnnotations":                     boolChoice(),
		"BreakArrays":                                        boolChoice(),
		"BreakFunctionDefinitionParameters":                  boolChoice(),
		"ConstructorInitializerAllOnOneLineOrOnePerLine":     boolChoice(),
		"DeriveLineEnding":                                   boolChoice(),
		"ExperimentalAutoDetectBinPacking":                   boolChoice(),
		"IndentAccessModifiers":                              boolChoice(),
		"IndentRequiresClause":                               boolChoice(),
		"InheritsParentConfig":                               boolChoice(),
		"InsertBraces":                                       boolChoice(),
		"InsertNewlineAtEOF":                                 boolChoice(),
		"JavaScriptWrapImports":                              boolChoice(),
		"KeepEmptyLinesAtEOF":                                boolChoice(),
		"KeepFormFeed":                                       boolChoice(),
		"ObjCBreakBeforeNestedBlockParam":                    boolChoice(),
		"ObjCSpaceAfterProperty":                             boolChoice(),
		"ObjCSpaceBeforeProtocolList":                        boolChoice(),
		"RemoveBracesLLVM":                                   boolChoice(),
		"RemoveSemicolon":                                    boolChoice(),
		"SkipMacroDefinitionBody":                            boolChoice(),
		"SpaceBeforeCaseColon":                                boolChoice(),
		"SpaceBeforeJsonColon":                               boolChoice(),
		"SpaceBeforeSquareBrackets":                          boolChoice(),
		"UseCRLF":                                            boolChoice(),
		"VerilogBreakBetweenInstancePorts":                   boolChoice(),
		// AlignConsecutive* structs' shared leaf fields.
		"Enabled":               boolChoice(),
		"AcrossEmptyLines":      boolChoice(),
		"AcrossComments":        boolChoice(),
		"AlignCompound":         boolChoice(),
		"AlignFunctionPointers": boolChoice(),
		"PadOperators":          boolChoice(),
		// SpaceBeforeParensOptions' leaf fields.
		"AfterControlStatements":        boolChoice(),
		"AfterForeachMacros":            boolChoice(),
		"AfterFunctionDeclarationName":  boolChoice(),
		"AfterFunctionDefinitionName":   boolChoice(),
		"AfterIfMacros":                 boolChoice(),
		"AfterOverloadedOperator":       boolChoice(),
		"AfterPlacementOperator":        boolChoice(),
		"AfterRequiresInClause":         boolChoice(),
		"AfterRequiresInExpression":     boolChoice(),
		"BeforeNonEmptyParentheses":     boolChoice(),
		// BraceWrapping's remaining leaf fields.
		"AfterCaseLabel":        boolChoice(),
		"AfterClass":            boolChoice(),
		"AfterEnum":             boolChoice(),
		"AfterFunction":         boolChoice(),
		"AfterNamespace":        boolChoice(),
		"AfterObjCDeclaration":  boolChoice(),
		"AfterStruct":           boolChoice(),
		"AfterUnion":            boolChoice(),
		"AfterExternBlock":      boolChoice(),
		"BeforeCatch":           boolChoice(),
		"BeforeElse":            boolChoice(),
		"BeforeLambdaBody":      boolChoice(),
		"BeforeWhile":           boolChoice(),
		"IndentBraces":          boolChoice(),
		"SplitEmptyFunction":    boolChoice(),
		"SplitEmptyRecord":      boolChoice(),
		"SplitEmptyNamespace":   boolChoice(),

		// Opaque pass-through values the search must never touch: the
		// style's own identity, and lists of macro/type/regex names with
		// no natural mutation (a "mutated" macro name is not a smaller or
		// larger macro name, just a different and almost certainly wrong
		// one).
		"Language":                       mutation.IdentityRule{},
		"CommentPragmas":                 mutation.IdentityRule{},
		"MacroBlockBegin":                mutation.IdentityRule{},
		"MacroBlockEnd":                  mutation.IdentityRule{},
		"ForEachMacros":                  mutation.IdentityRule{},
		"IfMacros":                       mutation.IdentityRule{},
		"StatementAttributeLikeMacros":   mutation.IdentityRule{},
		"StatementMacros":                mutation.IdentityRule{},
		"TypeNames":                      mutation.IdentityRule{},
		"TypenameMacros":                 mutation.IdentityRule{},
		"VariableTemplates":              mutation.IdentityRule{},
		"WhitespaceSensitiveMacros":      mutation.IdentityRule{},
		"AttributeMacros":                mutation.IdentityRule{},
		"NamespaceMacros":                mutation.IdentityRule{},
		"IncludeCategories":              mutation.IdentityRule{},
		"IncludeIsMainRegex":             mutation.IdentityRule{},
		"IncludeIsMainSourceRegex":       mutation.IdentityRule{},
		"JavaImportGroups":               mutation.IdentityRule{},
		"Macros":                         mutation.IdentityRule{},
		"RawStringFormats":               mutation.IdentityRule{},
	}
}
