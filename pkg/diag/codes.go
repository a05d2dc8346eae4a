package diag

// Code is a diagnostic code borrowed from the host language's standard
// code set, kept numerically aligned so editor tooling built against that
// set recognizes ours without translation.
type Code int

const (
	CodeIdentifierExpected           Code = 1003
	CodeTokenExpected                Code = 1005
	CodeInitializerNotAllowedInAmbient Code = 1039
	CodeModifierCannotBeUsedHere     Code = 1042
	CodeImplementationNotAllowedInAmbient Code = 1183
	CodeReturnOutsideFunction        Code = 1108
	CodeExpressionExpected          Code = 1109
	CodeTypeExpected                Code = 1110
	CodeTypeParameterListEmpty      Code = 1098
	CodeCaseOrDefaultExpected       Code = 1130
	CodeLineBreakNotPermittedHere   Code = 1142
	CodeStringLiteralExpected       Code = 1141
	CodeDecoratorsNotValidHere      Code = 1206
	CodeFunctionImplementationMissing Code = 1252
	CodeIncrementOperandMustBeVariable Code = 2357
	CodeDuplicateSource             Code = 6053
	CodeUnterminatedString          Code = 1002
	CodeUnterminatedComment         Code = 1010
	CodeInvalidRegexp               Code = 1499
	// CodeTypeAliasNotSupported has no counterpart in the host language's
	// standard code set: it is this parser's own diagnostic, so it lives
	// outside the borrowed ranges above rather than reusing one of them.
	CodeTypeAliasNotSupported       Code = 7001
	CodeVariableImplicitAny         Code = 7005
	CodeFunctionImplicitReturnType  Code = 7010
)

var messages = map[Code]string{
	CodeIdentifierExpected:                "Identifier expected.",
	CodeTokenExpected:                     "'%s' expected.",
	CodeInitializerNotAllowedInAmbient:    "Initializers are not allowed in ambient contexts.",
	CodeModifierCannotBeUsedHere:          "Modifier '%s' cannot appear here.",
	CodeImplementationNotAllowedInAmbient: "An implementation cannot be declared in ambient contexts.",
	CodeReturnOutsideFunction:             "A 'return' statement can only be used within a function body.",
	CodeExpressionExpected:                "Expression expected.",
	CodeTypeExpected:                      "Type expected.",
	CodeTypeParameterListEmpty:            "Type parameter list cannot be empty.",
	CodeCaseOrDefaultExpected:             "A 'case' or 'default' clause is expected.",
	CodeLineBreakNotPermittedHere:         "Line break not permitted here.",
	CodeStringLiteralExpected:             "String literal expected.",
	CodeDecoratorsNotValidHere:            "Decorators are not valid here.",
	CodeFunctionImplementationMissing:     "Function implementation is missing or not immediately following the declaration.",
	CodeIncrementOperandMustBeVariable:    "The operand of an increment or decrement operator must be a variable or a property access.",
	CodeDuplicateSource:                   "A source file named '%s' has already been added to this program.",
	CodeUnterminatedString:                "Unterminated string literal.",
	CodeUnterminatedComment:               "Unterminated multi-line comment.",
	CodeInvalidRegexp:                     "Invalid regular expression: %s.",
	CodeTypeAliasNotSupported:             "Type aliases are not yet supported.",
	CodeVariableImplicitAny:               "Variable '%s' implicitly has an 'any' type.",
	CodeFunctionImplicitReturnType:        "'%s', which lacks return-type annotation, implicitly has an 'any' return type.",
}
