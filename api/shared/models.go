/* models.go
 * This file contain the structs that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

// User is the Discord account issuing a command
type User struct {
	UserID   string
	Username string
}
