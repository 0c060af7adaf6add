package payroll

var ReleaseLockScriptHash = releaseLockScript.Hash()
